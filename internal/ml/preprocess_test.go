package ml

import (
	"math"
	"testing"
)

func TestStandardScaler(t *testing.T) {
	var s StandardScaler
	X := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	if err := s.Fit(X); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if s.Mean[0] != 2 || s.Mean[1] != 20 {
		t.Errorf("Expected means [2 20], got %v", s.Mean)
	}

	row, err := s.TransformRow([]float64{2, 20})
	if err != nil {
		t.Fatalf("TransformRow failed: %v", err)
	}
	for j, v := range row {
		if math.Abs(v) > 1e-9 {
			t.Errorf("Mean value should scale to 0, column %d got %f", j, v)
		}
	}
}

func TestStandardScalerConstantColumn(t *testing.T) {
	var s StandardScaler
	if err := s.Fit([][]float64{{5}, {5}, {5}}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	row, err := s.TransformRow([]float64{5})
	if err != nil {
		t.Fatalf("TransformRow failed: %v", err)
	}
	if row[0] != 0 {
		t.Errorf("Constant column should transform to 0, got %f", row[0])
	}
}

func TestOneHotEncoderKnownCategories(t *testing.T) {
	var e OneHotEncoder
	rows := [][]string{
		{"Wheat", "Rabi"},
		{"Rice", "Kharif"},
		{"Wheat", "Kharif"},
	}
	if err := e.Fit(rows); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if e.Width != 4 {
		t.Fatalf("Expected encoded width 4, got %d", e.Width)
	}

	out, err := e.TransformRow([]string{"Rice", "Rabi"})
	if err != nil {
		t.Fatalf("TransformRow failed: %v", err)
	}
	active := 0
	for _, v := range out {
		if v == 1 {
			active++
		}
	}
	if active != 2 {
		t.Errorf("Expected exactly 2 active positions, got %d in %v", active, out)
	}
}

func TestOneHotEncoderUnknownCategoryIsAllZero(t *testing.T) {
	var e OneHotEncoder
	if err := e.Fit([][]string{{"Wheat"}, {"Rice"}}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	out, err := e.TransformRow([]string{"Quinoa"})
	if err != nil {
		t.Fatalf("Unknown category must not error: %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Errorf("Unknown category must encode all-zero, position %d got %f", i, v)
		}
	}
}

func TestPreprocessorCombinesBlocks(t *testing.T) {
	var p Preprocessor
	num := [][]float64{{1, 100}, {2, 200}, {3, 300}}
	cat := [][]string{{"a"}, {"b"}, {"a"}}
	if err := p.Fit(num, cat); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	row, err := p.TransformRow([]float64{2, 200}, []string{"b"})
	if err != nil {
		t.Fatalf("TransformRow failed: %v", err)
	}
	if len(row) != 4 {
		t.Errorf("Expected combined width 4 (2 numeric + 2 encoded), got %d", len(row))
	}
}
