package service

import (
	"math"
	"testing"

	"github.com/agripricepro/backend/internal/domain"
)

func TestSimulatorDeterministicPerCrop(t *testing.T) {
	a := SimulatePriceData("Rice", "/quintal")
	b := SimulatePriceData("Rice", "/quintal")

	for i := range a.HistoricalPrices {
		if a.HistoricalPrices[i] != b.HistoricalPrices[i] {
			t.Fatalf("Historical prices differ at %d: %f vs %f", i, a.HistoricalPrices[i], b.HistoricalPrices[i])
		}
	}
	for i := range a.FuturePrices {
		if a.FuturePrices[i] != b.FuturePrices[i] {
			t.Fatalf("Future prices differ at %d: %f vs %f", i, a.FuturePrices[i], b.FuturePrices[i])
		}
	}
	for i := range a.ConfidenceScores {
		if a.ConfidenceScores[i] != b.ConfidenceScores[i] {
			t.Fatalf("Confidence scores differ at %d", i)
		}
	}
	if a.PredictedPrice != b.PredictedPrice || a.CurrentPrice != b.CurrentPrice {
		t.Error("Point values must be identical across calls for the same crop")
	}
}

func TestSimulatorDiffersBetweenCrops(t *testing.T) {
	a := SimulatePriceData("Rice", "/quintal")
	b := SimulatePriceData("Mango", "/quintal")
	if a.PredictedPrice == b.PredictedPrice {
		t.Error("Different crops should seed different trajectories")
	}
}

func TestSimulatorOutputShape(t *testing.T) {
	res := SimulatePriceData("Tomato", "/kg")

	if len(res.HistoricalPrices) != domain.HistoricalMonths {
		t.Errorf("Expected %d historical prices, got %d", domain.HistoricalMonths, len(res.HistoricalPrices))
	}
	if len(res.FuturePrices) != domain.FutureMonths {
		t.Errorf("Expected %d future prices, got %d", domain.FutureMonths, len(res.FuturePrices))
	}
	if len(res.ConfidenceScores) != domain.FutureMonths {
		t.Errorf("Expected %d confidence scores, got %d", domain.FutureMonths, len(res.ConfidenceScores))
	}

	for i, p := range res.HistoricalPrices {
		if p < domain.PriceFloor {
			t.Errorf("Historical price %d below floor: %f", i, p)
		}
	}
	for i, p := range res.FuturePrices {
		if p < domain.PriceFloor {
			t.Errorf("Future price %d below floor: %f", i, p)
		}
	}
	for i, c := range res.ConfidenceScores {
		if c < domain.MinConfidence || c > domain.MaxConfidence {
			t.Errorf("Confidence %d out of [50,100]: %f", i, c)
		}
	}

	if !res.IsSimulated {
		t.Error("Simulator output must be flagged is_simulated")
	}
	wantPredicted := (res.FuturePrices[0] + res.FuturePrices[1] + res.FuturePrices[2]) / 3
	if math.Abs(res.PredictedPrice-wantPredicted) > 1e-9 {
		t.Errorf("Predicted price should be the mean of the first 3 future samples: want %f, got %f", wantPredicted, res.PredictedPrice)
	}
	if res.CurrentPrice != res.HistoricalPrices[domain.HistoricalMonths-1] {
		t.Error("Current price should equal the newest historical sample")
	}
}

func TestSimulatorUnitClasses(t *testing.T) {
	for _, unit := range []string{"/kg", "/dozen", "/quintal", "/unit"} {
		res := SimulatePriceData("Onion", unit)
		if res.Unit != unit {
			t.Errorf("Unit %q not echoed, got %q", unit, res.Unit)
		}
		if res.PredictedPrice <= 0 {
			t.Errorf("Unit %q produced non-positive prediction %f", unit, res.PredictedPrice)
		}
	}
}
