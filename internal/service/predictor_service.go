package service

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/agripricepro/backend/internal/domain"
	"github.com/agripricepro/backend/internal/ml"
)

// PredictorService turns sparse dashboard queries into full price
// trajectories. It owns the fitted pipeline and unit map as immutable fields
// loaded once at process start; a nil pipeline means the process runs in
// fallback mode for its whole lifetime. Safe for concurrent use: nothing is
// mutated after construction and the pipeline's inference path is read-only.
type PredictorService struct {
	pipeline *ml.Pipeline
	unitMap  map[string]string
	now      func() time.Time
}

// NewPredictorService creates the inference service. pipeline may be nil
// (artifacts missing or corrupt at startup); unitMap may be nil, in which
// case every crop resolves to the default unit.
func NewPredictorService(pipeline *ml.Pipeline, unitMap map[string]string) *PredictorService {
	if unitMap == nil {
		unitMap = map[string]string{}
	}
	return &PredictorService{
		pipeline: pipeline,
		unitMap:  unitMap,
		now:      time.Now,
	}
}

// Degraded reports whether the service runs without a fitted pipeline.
func (s *PredictorService) Degraded() bool {
	return s.pipeline == nil
}

// Predict validates the request and produces a trajectory. With a loaded
// pipeline the point prediction comes from the model; if that single
// invocation fails, only this request degrades to the simulator — the next
// request retries the pipeline. Validation errors are returned to the caller
// and never reach the prediction path.
func (s *PredictorService) Predict(ctx context.Context, req domain.PredictionRequest) (domain.PredictionResult, error) {
	if err := req.Validate(); err != nil {
		return domain.PredictionResult{}, err
	}

	unit := s.unit(req.CropType)

	var res domain.PredictionResult
	if s.pipeline == nil {
		res = SimulatePriceData(req.CropType, unit)
	} else {
		modeled, err := s.predictWithPipeline(req, unit)
		if err != nil {
			log.Printf("pipeline prediction failed for crop %q, falling back to simulation: %v", req.CropType, err)
			res = SimulatePriceData(req.CropType, unit)
		} else {
			res = modeled
		}
	}

	// Echo the query back for dashboard display.
	res.CropType = req.CropType
	res.Season = req.Season
	res.Country = req.Country
	res.State = req.State
	return res, nil
}

// predictWithPipeline is the model-backed path: reconstruct the full feature
// vector, invoke the fitted pipeline, and synthesize the trajectory around
// the point prediction. Only errors from the pipeline invocation itself
// surface here; they are the enumerated recoverable condition the caller
// answers with simulation.
func (s *PredictorService) predictWithPipeline(req domain.PredictionRequest, unit string) (domain.PredictionResult, error) {
	now := s.now()
	rec := reconstructFeatures(req, unit, now)

	predicted, err := s.pipeline.Predict(rec.vector)
	if err != nil {
		return domain.PredictionResult{}, err
	}
	predicted = math.Max(1.0, predicted)

	current, historical, future, confidence := synthesizeTrajectory(predicted, int(now.Month()))

	return domain.PredictionResult{
		CurrentPrice:     current,
		PredictedPrice:   predicted,
		Unit:             unit,
		HistoricalPrices: historical,
		FuturePrices:     future,
		ConfidenceScores: confidence,
		Factors:          modelFactors(rec.rainfall, rec.area),
		Recommendations:  modelRecommendations(),
	}, nil
}

func (s *PredictorService) unit(cropType string) string {
	if u, ok := s.unitMap[cropType]; ok {
		return u
	}
	return domain.DefaultUnit
}
