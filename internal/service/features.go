package service

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/agripricepro/backend/internal/domain"
)

// reconstructed bundles the full feature vector with the simulated inputs
// the narrative factors reference.
type reconstructed struct {
	vector   domain.FeatureVector
	rainfall float64
	area     float64
}

// reconstructFeatures expands the four-field query into the full vector the
// pipeline expects. The synthesized numerics are explicit stochastic models,
// not measurements; they exist to satisfy the pipeline's column contract.
// Randomness here is deliberately unseeded: the model-backed path varies per
// request, unlike the deterministic fallback simulator.
func reconstructFeatures(req domain.PredictionRequest, unit string, now time.Time) reconstructed {
	month := int(now.Month())

	rainfall := 70 + 60*math.Sin(math.Pi*float64(month)/6) + rand.NormFloat64()*15
	rainfall = math.Max(0, rainfall)

	area := 1000 + rand.NormFloat64()*100
	area = math.Max(100, area)

	temperature := 18 + 10*math.Sin(math.Pi*float64(month-4)/6) + rand.NormFloat64()*2

	yield := 1800 + rand.NormFloat64()*150
	yield = math.Max(200, yield)
	production := area * yield / 1000

	prevPrice := 80.0
	if strings.Contains(unit, "quintal") {
		prevPrice = 5000
	}
	prevPrice *= 1 + uniform(-0.1, 0.1)

	return reconstructed{
		vector: domain.FeatureVector{
			CropType:     req.CropType,
			CropCategory: domain.CategoryForCrop(req.CropType),
			Season:       req.Season,
			Country:      req.Country,
			State:        req.State,
			District:     domain.PlaceholderCategory,
			Market:       domain.PlaceholderCategory,
			Month:        strconv.Itoa(month),

			Year:              float64(now.Year()),
			RainfallMM:        rainfall,
			TemperatureC:      temperature,
			AreaHectares:      area,
			ProductionTonnes:  production,
			YieldKgPerHectare: yield,
			PreviousYearPrice: prevPrice,
		},
		rainfall: rainfall,
		area:     area,
	}
}

// uniform draws from [lo, hi) using the shared unseeded source.
func uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}
