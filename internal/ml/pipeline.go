package ml

import (
	"fmt"

	"github.com/agripricepro/backend/internal/domain"
)

// Pipeline is the single fit/predict unit: a fitted column preprocessor plus
// the trained forest. It records the column names it was fit with so a
// loaded artifact can be sanity-checked against the compiled-in schema.
// Immutable after Fit; concurrent Predict calls are safe because nothing in
// the inference path mutates state.
type Pipeline struct {
	NumericalColumns   []string
	CategoricalColumns []string

	Pre    Preprocessor
	Forest *RandomForestRegressor
}

// NewPipeline composes a preprocessor with a forest configured by opts.
func NewPipeline(opts ...ForestOption) *Pipeline {
	return &Pipeline{
		NumericalColumns:   append([]string(nil), domain.NumericalFeatures...),
		CategoricalColumns: append([]string(nil), domain.CategoricalFeatures...),
		Forest:             NewRandomForestRegressor(opts...),
	}
}

// Fit fits the preprocessor on the cleaned matrices, transforms them, and
// trains the forest on the result.
func (p *Pipeline) Fit(num [][]float64, cat [][]string, y []float64) error {
	if err := p.Pre.Fit(num, cat); err != nil {
		return fmt.Errorf("ml: preprocessor fit: %w", err)
	}
	X, err := p.Pre.Transform(num, cat)
	if err != nil {
		return fmt.Errorf("ml: preprocessor transform: %w", err)
	}
	if err := p.Forest.Fit(X, y); err != nil {
		return fmt.Errorf("ml: forest fit: %w", err)
	}
	return nil
}

// Predict runs a single fully populated feature vector through the fitted
// pipeline. The vector's schema accessors guarantee column order matches
// what the preprocessor saw at fit time.
func (p *Pipeline) Predict(v domain.FeatureVector) (float64, error) {
	if p.Forest == nil {
		return 0, fmt.Errorf("ml: pipeline not fitted")
	}
	x, err := p.Pre.TransformRow(v.Numericals(), v.Categoricals())
	if err != nil {
		return 0, fmt.Errorf("ml: pipeline transform: %w", err)
	}
	pred, err := p.Forest.PredictRow(x)
	if err != nil {
		return 0, fmt.Errorf("ml: pipeline predict: %w", err)
	}
	return pred, nil
}

// CheckSchema verifies the pipeline was fit with exactly the column set this
// build expects. Column-based transformers silently misapply on drift, so a
// loaded artifact with a different column set is rejected up front.
func (p *Pipeline) CheckSchema(numerical, categorical []string) error {
	if !equalStrings(p.NumericalColumns, numerical) || !equalStrings(p.CategoricalColumns, categorical) {
		return fmt.Errorf("ml: artifact column set does not match the compiled-in feature schema")
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Score returns the training-set R-squared.
func (p *Pipeline) Score(num [][]float64, cat [][]string, y []float64) (float64, error) {
	X, err := p.Pre.Transform(num, cat)
	if err != nil {
		return 0, err
	}
	return p.Forest.Score(X, y)
}
