package ml

import (
	"fmt"
	"math"
)

// StandardScaler rescales each numeric column to zero mean and unit variance
// using statistics captured at fit time. Constant columns get Std 1 so they
// transform to zero instead of dividing by zero.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes per-column mean and standard deviation.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return fmt.Errorf("ml: scaler fit on empty matrix")
	}
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := range X {
			s.Mean[j] += X[i][j]
		}
		s.Mean[j] /= float64(len(X))

		variance := 0.0
		for i := range X {
			d := X[i][j] - s.Mean[j]
			variance += d * d
		}
		variance /= float64(len(X))
		s.Std[j] = math.Sqrt(variance)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	return nil
}

// TransformRow standardizes a single row.
func (s *StandardScaler) TransformRow(row []float64) ([]float64, error) {
	if len(row) != len(s.Mean) {
		return nil, fmt.Errorf("ml: scaler expects %d numeric values, got %d", len(s.Mean), len(row))
	}
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out, nil
}

// OneHotEncoder expands categorical columns into one-hot blocks. Categories
// are registered in first-seen order at fit time. A value unseen at fit time
// encodes as an all-zero block rather than an error, so inference never
// rejects an unknown category.
type OneHotEncoder struct {
	// Categories maps category -> offset within the column's block,
	// one map per categorical column.
	Categories []map[string]int
	// Offsets holds each column's starting position in the encoded vector.
	Offsets []int
	// Width is the total encoded vector length.
	Width int
}

// Fit registers the categories present in each column.
func (e *OneHotEncoder) Fit(rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("ml: encoder fit on empty matrix")
	}
	cols := len(rows[0])
	e.Categories = make([]map[string]int, cols)
	for j := 0; j < cols; j++ {
		e.Categories[j] = map[string]int{}
		for i := range rows {
			v := rows[i][j]
			if _, ok := e.Categories[j][v]; !ok {
				e.Categories[j][v] = len(e.Categories[j])
			}
		}
	}
	e.Offsets = make([]int, cols)
	e.Width = 0
	for j := 0; j < cols; j++ {
		e.Offsets[j] = e.Width
		e.Width += len(e.Categories[j])
	}
	return nil
}

// TransformRow encodes a single row of categorical values.
func (e *OneHotEncoder) TransformRow(row []string) ([]float64, error) {
	if len(row) != len(e.Categories) {
		return nil, fmt.Errorf("ml: encoder expects %d categorical values, got %d", len(e.Categories), len(row))
	}
	out := make([]float64, e.Width)
	for j, v := range row {
		if idx, ok := e.Categories[j][v]; ok {
			out[e.Offsets[j]+idx] = 1
		}
	}
	return out, nil
}

// Preprocessor standardizes numeric columns, one-hot encodes categorical
// columns, and concatenates both into the feature vector the regressor sees.
type Preprocessor struct {
	Scaler  StandardScaler
	Encoder OneHotEncoder
}

// Fit fits both stages on the training set.
func (p *Preprocessor) Fit(num [][]float64, cat [][]string) error {
	if err := p.Scaler.Fit(num); err != nil {
		return err
	}
	return p.Encoder.Fit(cat)
}

// TransformRow builds the combined feature vector for one sample.
func (p *Preprocessor) TransformRow(num []float64, cat []string) ([]float64, error) {
	scaled, err := p.Scaler.TransformRow(num)
	if err != nil {
		return nil, err
	}
	encoded, err := p.Encoder.TransformRow(cat)
	if err != nil {
		return nil, err
	}
	return append(scaled, encoded...), nil
}

// Transform builds combined feature vectors for a whole dataset.
func (p *Preprocessor) Transform(num [][]float64, cat [][]string) ([][]float64, error) {
	if len(num) != len(cat) {
		return nil, fmt.Errorf("ml: numeric rows (%d) and categorical rows (%d) mismatch", len(num), len(cat))
	}
	out := make([][]float64, len(num))
	for i := range num {
		row, err := p.TransformRow(num[i], cat[i])
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}
