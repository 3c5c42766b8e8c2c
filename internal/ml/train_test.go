package ml

import (
	"math"
	"testing"

	"github.com/agripricepro/backend/internal/domain"
)

func trainingFixture() []domain.PriceRecord {
	var records []domain.PriceRecord
	prices := []float64{2100, 2180, 2230, 2150, 2260, 2310, 2280, 2340}
	for i, price := range prices {
		records = append(records, domain.PriceRecord{
			CropType:          "Wheat",
			CropCategory:      "Cereals",
			Season:            "Rabi (Winter)",
			Country:           "India",
			State:             "Punjab",
			District:          "Ludhiana",
			Market:            "Khanna Mandi",
			Month:             "1",
			Year:              2024,
			RainfallMM:        40 + float64(i)*10,
			TemperatureC:      22,
			AreaHectares:      1000,
			ProductionTonnes:  1900,
			YieldKgPerHectare: 1900,
			PreviousYearPrice: price * 0.95,
			AveragePrice:      price,
		})
	}
	return records
}

func TestCleanRecordsDropsMissingTargets(t *testing.T) {
	records := trainingFixture()
	records[0].AveragePrice = math.NaN()
	records[1].AveragePrice = math.NaN()

	num, cat, y, err := CleanRecords(records)
	if err != nil {
		t.Fatalf("CleanRecords failed: %v", err)
	}
	want := len(records) - 2
	if len(num) != want || len(cat) != want || len(y) != want {
		t.Errorf("Expected %d cleaned rows, got %d/%d/%d", want, len(num), len(cat), len(y))
	}
}

func TestCleanRecordsImputesMissingValues(t *testing.T) {
	records := trainingFixture()
	records[2].RainfallMM = math.NaN()
	records[3].Season = ""

	num, cat, _, err := CleanRecords(records)
	if err != nil {
		t.Fatalf("CleanRecords failed: %v", err)
	}

	for i := range num {
		for j, v := range num[i] {
			if math.IsNaN(v) {
				t.Errorf("Row %d numeric column %d still NaN after imputation", i, j)
			}
		}
	}
	for i := range cat {
		for j, v := range cat[i] {
			if v == "" {
				t.Errorf("Row %d categorical column %d still empty after imputation", i, j)
			}
		}
	}
	// The only non-empty season is the mode, so the blank cell takes it.
	if cat[3][2] != "Rabi (Winter)" {
		t.Errorf("Expected mode imputation for season, got %q", cat[3][2])
	}
}

func TestCleanRecordsAllTargetsMissing(t *testing.T) {
	records := trainingFixture()
	for i := range records {
		records[i].AveragePrice = math.NaN()
	}
	if _, _, _, err := CleanRecords(records); err == nil {
		t.Fatal("Expected error when every row lacks a target")
	}
}

func TestTrainFromRecordsPredictsWithinFixtureRange(t *testing.T) {
	records := trainingFixture()
	pipeline, score, err := TrainFromRecords(records, WithNEstimators(20), WithRandomState(42))
	if err != nil {
		t.Fatalf("TrainFromRecords failed: %v", err)
	}
	if score <= 0 {
		t.Errorf("Training-set score should be positive, got %f", score)
	}

	pred, err := pipeline.Predict(domain.FeatureVector{
		CropType: "Wheat", CropCategory: "Cereals", Season: "Rabi (Winter)",
		Country: "India", State: "Punjab", District: "Ludhiana",
		Market: "Khanna Mandi", Month: "1",
		Year: 2024, RainfallMM: 60, TemperatureC: 22, AreaHectares: 1000,
		ProductionTonnes: 1900, YieldKgPerHectare: 1900, PreviousYearPrice: 2200,
	})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	// Forest predictions average observed targets, so they must stay within
	// the fixture price range, comfortably inside the ±50% acceptance band.
	if pred < 2100*0.5 || pred > 2340*1.5 {
		t.Errorf("Prediction %f outside fixture range ±50%%", pred)
	}
}

func TestPipelinePredictUnknownCategory(t *testing.T) {
	pipeline, _, err := TrainFromRecords(trainingFixture(), WithNEstimators(10))
	if err != nil {
		t.Fatalf("TrainFromRecords failed: %v", err)
	}

	pred, err := pipeline.Predict(domain.FeatureVector{
		CropType: "Quinoa", CropCategory: "Unknown", Season: "Spring",
		Country: "Peru", State: "Cusco", District: "Unknown",
		Market: "Unknown", Month: "4",
		Year: 2025, RainfallMM: 80, TemperatureC: 15, AreaHectares: 900,
		ProductionTonnes: 1500, YieldKgPerHectare: 1600, PreviousYearPrice: 90,
	})
	if err != nil {
		t.Fatalf("Unknown categories must not fail prediction: %v", err)
	}
	if pred <= 0 {
		t.Errorf("Expected positive prediction, got %f", pred)
	}
}

func TestBuildUnitMap(t *testing.T) {
	records := trainingFixture()
	records = append(records, domain.PriceRecord{CropType: "Rice", AveragePrice: 3000})

	units := BuildUnitMap(records)
	if units["Wheat"] != "/quintal" || units["Rice"] != "/quintal" {
		t.Errorf("Expected /quintal units for crops seen in training, got %v", units)
	}
	if _, ok := units[""]; ok {
		t.Error("Empty crop name must not enter the unit map")
	}
}
