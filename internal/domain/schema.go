package domain

import "math"

// Feature schema shared by training and inference. The column order here is
// the order the fitted preprocessor expects; both PriceRecord and
// FeatureVector emit their values through the accessors below so the two
// sides can never drift apart.
var (
	// CategoricalFeatures lists categorical columns in declared order.
	CategoricalFeatures = []string{
		"crop_type", "crop_category", "season", "country", "state",
		"district", "market", "month",
	}

	// NumericalFeatures lists numerical columns in declared order.
	NumericalFeatures = []string{
		"year", "rainfall_mm", "temperature_c", "area_hectares",
		"production_tonnes", "yield_kg_per_hectare", "previous_year_price",
	}
)

// TargetColumn is the training target.
const TargetColumn = "average_price"

// PlaceholderCategory fills categorical columns the inference query cannot
// supply (district, market). The one-hot encoder maps categories it never saw
// at fit time to an all-zero block, so an unseen placeholder is safe.
const PlaceholderCategory = "Unknown"

// PriceRecord is one historical training row. Missing numerics are NaN,
// missing categoricals are the empty string. AveragePrice is NaN when the
// row has no target; such rows are dropped during cleaning, never imputed.
type PriceRecord struct {
	CropType     string
	CropCategory string
	Season       string
	Country      string
	State        string
	District     string
	Market       string
	Month        string

	Year              float64
	RainfallMM        float64
	TemperatureC      float64
	AreaHectares      float64
	ProductionTonnes  float64
	YieldKgPerHectare float64
	PreviousYearPrice float64

	AveragePrice float64
}

// HasTarget reports whether the row can participate in training.
func (r PriceRecord) HasTarget() bool {
	return !math.IsNaN(r.AveragePrice)
}

// Categoricals returns the categorical values in schema order.
func (r PriceRecord) Categoricals() []string {
	return []string{
		r.CropType, r.CropCategory, r.Season, r.Country, r.State,
		r.District, r.Market, r.Month,
	}
}

// Numericals returns the numerical values in schema order.
func (r PriceRecord) Numericals() []float64 {
	return []float64{
		r.Year, r.RainfallMM, r.TemperatureC, r.AreaHectares,
		r.ProductionTonnes, r.YieldKgPerHectare, r.PreviousYearPrice,
	}
}

// FeatureVector is a fully populated inference input. Every schema column
// must be present; sparse queries are expanded by the feature reconstructor
// before a vector is built.
type FeatureVector struct {
	CropType     string
	CropCategory string
	Season       string
	Country      string
	State        string
	District     string
	Market       string
	Month        string

	Year              float64
	RainfallMM        float64
	TemperatureC      float64
	AreaHectares      float64
	ProductionTonnes  float64
	YieldKgPerHectare float64
	PreviousYearPrice float64
}

// Categoricals returns the categorical values in schema order.
func (v FeatureVector) Categoricals() []string {
	return []string{
		v.CropType, v.CropCategory, v.Season, v.Country, v.State,
		v.District, v.Market, v.Month,
	}
}

// Numericals returns the numerical values in schema order.
func (v FeatureVector) Numericals() []float64 {
	return []float64{
		v.Year, v.RainfallMM, v.TemperatureC, v.AreaHectares,
		v.ProductionTonnes, v.YieldKgPerHectare, v.PreviousYearPrice,
	}
}
