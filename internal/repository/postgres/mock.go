package postgres

import (
	"context"

	"github.com/agripricepro/backend/internal/domain"
)

// MockRepository implements domain.RecordRepository for testing/demo mode.
// It serves a small synthetic slice of the price history so training can run
// without any external data source.
type MockRepository struct{}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// LoadPriceRecords returns fixture price history
func (r *MockRepository) LoadPriceRecords(ctx context.Context) ([]domain.PriceRecord, error) {
	return FixtureRecords(), nil
}

// Health always succeeds in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}

// FixtureRecords builds the synthetic rows the mock repository serves. The
// set intentionally covers two crops across several months so a pipeline
// trained on it produces distinguishable predictions.
func FixtureRecords() []domain.PriceRecord {
	base := domain.PriceRecord{
		CropCategory: "Cereals",
		Country:      "India",
		District:     "Ludhiana",
		Market:       "Khanna Mandi",
		Year:         2024,
		TemperatureC: 24,
	}

	var records []domain.PriceRecord
	wheatPrices := []float64{2100, 2180, 2230, 2150, 2260, 2310}
	for i, price := range wheatPrices {
		rec := base
		rec.CropType = "Wheat"
		rec.Season = "Rabi (Winter)"
		rec.State = "Punjab"
		rec.Month = monthName(i + 1)
		rec.RainfallMM = 40 + float64(i)*12
		rec.AreaHectares = 950 + float64(i)*25
		rec.ProductionTonnes = 1800 + float64(i)*60
		rec.YieldKgPerHectare = 1850 + float64(i)*20
		rec.PreviousYearPrice = price * 0.93
		rec.AveragePrice = price
		records = append(records, rec)
	}

	ricePrices := []float64{2850, 2920, 3010, 2890, 3080, 3140}
	for i, price := range ricePrices {
		rec := base
		rec.CropType = "Rice"
		rec.Season = "Kharif (Monsoon)"
		rec.State = "Karnataka"
		rec.District = "Mandya"
		rec.Market = "Mandya APMC"
		rec.Month = monthName(i + 6)
		rec.RainfallMM = 120 + float64(i)*15
		rec.AreaHectares = 1100 + float64(i)*30
		rec.ProductionTonnes = 2400 + float64(i)*70
		rec.YieldKgPerHectare = 2150 + float64(i)*25
		rec.PreviousYearPrice = price * 0.95
		rec.AveragePrice = price
		records = append(records, rec)
	}

	return records
}

func monthName(m int) string {
	names := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	return names[(m-1)%12]
}
