package service

import (
	"math"
	"math/rand"

	"github.com/agripricepro/backend/internal/domain"
	"github.com/agripricepro/backend/pkg/utils"
)

// SimulatePriceData is the model-free fallback: a fully deterministic
// trajectory generator used when no fitted pipeline is available or a
// request's pipeline invocation fails. The random source is seeded from the
// crop name, so repeated calls for the same crop are byte-identical.
func SimulatePriceData(cropType, unit string) domain.PredictionResult {
	var seed int64
	for _, c := range cropType {
		seed += int64(c)
	}
	rng := rand.New(rand.NewSource(seed))

	// Price range and fluctuation magnitude by unit class.
	var basePrice, fluctuation float64
	switch unit {
	case "/kg":
		basePrice = uniformIn(rng, 20, 150)
		fluctuation = 0.08
	case "/dozen":
		basePrice = uniformIn(rng, 30, 100)
		fluctuation = 0.07
	case "/quintal":
		basePrice = uniformIn(rng, 1500, 8000)
		fluctuation = 0.05
	default:
		basePrice = uniformIn(rng, 10, 100)
		fluctuation = 0.10
	}

	historical := make([]float64, 0, domain.HistoricalMonths)
	walk := basePrice * (1 + uniformIn(rng, -0.15, 0.15))
	for i := 0; i < domain.HistoricalMonths; i++ {
		walk *= 1 + uniformIn(rng, -fluctuation, fluctuation)
		historical = append(historical, math.Max(domain.PriceFloor, walk))
	}
	reverseFloats(historical)

	future := make([]float64, 0, domain.FutureMonths)
	futureWalk := historical[len(historical)-1]
	for i := 0; i < domain.FutureMonths; i++ {
		seasonal := 1 + math.Sin(float64(i)/3*math.Pi)*0.05
		trend := 1 + uniformIn(rng, -0.005, 0.01)
		futureWalk *= trend * seasonal * (1 + uniformIn(rng, -fluctuation/2, fluctuation/2))
		future = append(future, math.Max(domain.PriceFloor, futureWalk))
	}

	// Without a model there is no single point prediction; use the mean of
	// the near-term forecast instead.
	predicted := utils.Mean(future[:3])

	return domain.PredictionResult{
		CurrentPrice:     historical[len(historical)-1],
		PredictedPrice:   predicted,
		Unit:             unit,
		HistoricalPrices: historical,
		FuturePrices:     future,
		ConfidenceScores: confidenceDecay(rng.Float64),
		Factors:          simulatedFactors(),
		Recommendations:  simulatedRecommendations(),
		IsSimulated:      true,
	}
}

func uniformIn(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func simulatedFactors() domain.Factors {
	return domain.Factors{
		Weather: domain.Factor{
			Condition:   "Expected normal monsoon; potential for localized heavy rains in few regions.",
			Impact:      "Overall positive outlook, but watch for regional disruptions.",
			ImpactColor: "text-green-600",
		},
		Supply: domain.Factor{
			Condition:   "Recent harvest was good, leading to moderate supply levels.",
			Impact:      "Prices are currently stable due to sufficient supply.",
			ImpactColor: "text-yellow-600",
		},
		Demand: domain.Factor{
			Condition:   "Domestic demand is steady, with moderate export interest.",
			Impact:      "Consistent demand provides a floor for prices.",
			ImpactColor: "text-green-600",
		},
	}
}

func simulatedRecommendations() domain.Recommendations {
	return domain.Recommendations{
		SellTime:      "The model suggests that the best time to sell could be in the next 2-3 months, as prices show a slight upward trend before seasonal increases in supply.",
		TrendAnalysis: "The predicted trend indicates a gradual increase in price for the next quarter, followed by a plateau. Long-term outlook (6-12 months) suggests stability.",
		AlertsEnabled: true,
	}
}
