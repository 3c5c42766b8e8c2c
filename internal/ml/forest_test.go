package ml

import (
	"math"
	"testing"
)

func linearDataset(n int) ([][]float64, []float64) {
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		X[i] = []float64{x, math.Mod(x, 7)}
		y[i] = 3*x + 5
	}
	return X, y
}

func TestRegressionTreeFitsTrainingData(t *testing.T) {
	X, y := linearDataset(40)
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}

	tree := &RegressionTree{MinSamplesSplit: 2, RandomState: 1}
	if err := tree.Fit(X, y, idx); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	for i := range X {
		pred, err := tree.PredictRow(X[i])
		if err != nil {
			t.Fatalf("PredictRow failed: %v", err)
		}
		if math.Abs(pred-y[i]) > 1e-9 {
			t.Fatalf("Unlimited-depth tree should memorize training row %d: want %f, got %f", i, y[i], pred)
		}
	}
}

func TestRandomForestPredictsNearTarget(t *testing.T) {
	X, y := linearDataset(60)

	rf := NewRandomForestRegressor(WithNEstimators(30), WithRandomState(7))
	if err := rf.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	pred, err := rf.PredictRow([]float64{30, 2})
	if err != nil {
		t.Fatalf("PredictRow failed: %v", err)
	}
	want := 3*30.0 + 5
	if math.Abs(pred-want) > 15 {
		t.Errorf("Prediction %f too far from %f", pred, want)
	}

	score, err := rf.Score(X, y)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score < 0.8 {
		t.Errorf("Training-set R-squared should exceed 0.8, got %f", score)
	}
}

func TestRandomForestReproducibleWithFixedSeed(t *testing.T) {
	X, y := linearDataset(50)

	a := NewRandomForestRegressor(WithNEstimators(10), WithRandomState(42))
	b := NewRandomForestRegressor(WithNEstimators(10), WithRandomState(42))
	if err := a.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	probe := []float64{17, 3}
	pa, _ := a.PredictRow(probe)
	pb, _ := b.PredictRow(probe)
	if pa != pb {
		t.Errorf("Same seed must reproduce predictions: %f vs %f", pa, pb)
	}
}

func TestRandomForestEmptyInput(t *testing.T) {
	rf := NewRandomForestRegressor()
	if err := rf.Fit(nil, nil); err == nil {
		t.Error("Expected error fitting on empty X")
	}
	if _, err := rf.PredictRow([]float64{1}); err == nil {
		t.Error("Expected error predicting with unfitted forest")
	}
}
