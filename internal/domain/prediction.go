package domain

import (
	"fmt"
	"strings"
)

// PredictionRequest is the sparse query the dashboard sends. Only these four
// fields are required; everything else the pipeline needs is reconstructed
// server-side.
type PredictionRequest struct {
	CropType string `json:"crop_type"`
	Season   string `json:"season"`
	Country  string `json:"country"`
	State    string `json:"state"`
}

// MissingFieldsError reports which required request fields were absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required prediction parameters: %s", strings.Join(e.Fields, ", "))
}

// Validate checks the exact required-field set {crop_type, season, country,
// state} and returns a MissingFieldsError naming every absent field.
func (r PredictionRequest) Validate() error {
	var missing []string
	if r.CropType == "" {
		missing = append(missing, "crop_type")
	}
	if r.Season == "" {
		missing = append(missing, "season")
	}
	if r.Country == "" {
		missing = append(missing, "country")
	}
	if r.State == "" {
		missing = append(missing, "state")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// Factor is one narrative driver shown on the dashboard.
type Factor struct {
	Condition   string `json:"condition"`
	Impact      string `json:"impact"`
	ImpactColor string `json:"impact_color"`
}

// Factors groups the three narrative categories.
type Factors struct {
	Weather Factor `json:"weather"`
	Supply  Factor `json:"supply"`
	Demand  Factor `json:"demand"`
}

// Recommendations carries advisory text for the farmer.
type Recommendations struct {
	SellTime      string `json:"sell_time"`
	TrendAnalysis string `json:"trend_analysis"`
	AlertsEnabled bool   `json:"alerts_enabled"`
}

// PredictionResult is the full trajectory returned per request: 24 months of
// synthesized history, 12 months of forecast, confidence per forecast month,
// and narrative factors, anchored on a single point prediction.
type PredictionResult struct {
	CropType string `json:"crop_type"`
	Season   string `json:"season"`
	Country  string `json:"country"`
	State    string `json:"state"`

	CurrentPrice     float64   `json:"current_price"`
	PredictedPrice   float64   `json:"predicted_price"`
	Unit             string    `json:"unit"`
	HistoricalPrices []float64 `json:"historical_prices"`
	FuturePrices     []float64 `json:"future_prices"`
	ConfidenceScores []float64 `json:"confidence_scores"`

	Factors         Factors         `json:"factors"`
	Recommendations Recommendations `json:"recommendations"`

	// IsSimulated marks responses produced by the deterministic fallback
	// instead of the trained pipeline.
	IsSimulated bool `json:"is_simulated"`
}

// Trajectory lengths and bounds shared by the model-backed synthesizer and
// the fallback simulator.
const (
	HistoricalMonths = 24
	FutureMonths     = 12
	PriceFloor       = 10.0
	MinConfidence    = 50.0
	MaxConfidence    = 100.0
)

// DefaultUnit is the display unit for crops absent from the unit map.
const DefaultUnit = "/unit"
