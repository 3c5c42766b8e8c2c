package ml

import (
	"fmt"

	"github.com/agripricepro/backend/internal/domain"
)

// TrainFromRecords runs the full offline training procedure: clean the
// records, fit the pipeline, and report the training-set R-squared. The
// score is informational only; no holdout split exists in this design.
func TrainFromRecords(records []domain.PriceRecord, opts ...ForestOption) (*Pipeline, float64, error) {
	num, cat, y, err := CleanRecords(records)
	if err != nil {
		return nil, 0, err
	}

	p := NewPipeline(opts...)
	if err := p.Fit(num, cat, y); err != nil {
		return nil, 0, err
	}

	score, err := p.Score(num, cat, y)
	if err != nil {
		return nil, 0, fmt.Errorf("ml: scoring trained pipeline: %w", err)
	}
	return p, score, nil
}

// BuildUnitMap derives the crop -> display unit lookup persisted alongside
// the pipeline. Source prices are quoted per quintal, so every crop seen in
// training maps to "/quintal"; crops outside the map fall back to
// domain.DefaultUnit at serving time.
func BuildUnitMap(records []domain.PriceRecord) map[string]string {
	units := map[string]string{}
	for _, r := range records {
		if r.CropType != "" {
			units[r.CropType] = "/quintal"
		}
	}
	return units
}
