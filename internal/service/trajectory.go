package service

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/agripricepro/backend/internal/domain"
	"github.com/agripricepro/backend/pkg/utils"
)

// synthesizeTrajectory expands a single point prediction into the full
// dashboard trajectory: a 24-month reverse random walk ending near the
// prediction, a 12-month seasonal/trend forecast anchored on it, and
// confidence scores decaying with horizon. Unseeded randomness throughout,
// so two calls with identical inputs produce different (same-shaped) series.
func synthesizeTrajectory(predicted float64, month int) (current float64, historical, future, confidence []float64) {
	current = predicted * (1 + uniform(-0.05, 0.05))

	historical = make([]float64, 0, domain.HistoricalMonths)
	historical = append(historical, current)
	for i := 1; i < domain.HistoricalMonths; i++ {
		prev := historical[len(historical)-1]
		historical = append(historical, math.Max(domain.PriceFloor, prev*(1+uniform(-0.02, 0.02))))
	}
	reverseFloats(historical) // oldest first

	future = make([]float64, 0, domain.FutureMonths)
	for i := 0; i < domain.FutureMonths; i++ {
		seasonal := 1 + 0.05*math.Sin(math.Pi*float64(month+i)/6)
		trend := 1 + 0.002*float64(i)
		v := predicted*seasonal*trend + rand.NormFloat64()*predicted*0.01
		future = append(future, math.Max(domain.PriceFloor, v))
	}

	confidence = confidenceDecay(rand.Float64)
	return current, historical, future, confidence
}

// confidenceDecay produces the 12 per-month scores: near-term forecasts stay
// close to 95, each added month costs about 3 points plus jitter, clamped to
// [50, 100].
func confidenceDecay(randFloat func() float64) []float64 {
	scores := make([]float64, 0, domain.FutureMonths)
	for i := 0; i < domain.FutureMonths; i++ {
		score := 95 - 3*float64(i) - randFloat()*5
		scores = append(scores, utils.Clamp(score, domain.MinConfidence, domain.MaxConfidence))
	}
	return scores
}

func reverseFloats(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// modelFactors builds the narrative drivers around the simulated conditions
// that fed the prediction. Thresholds are simple display heuristics, not
// model interpretability.
func modelFactors(rainfall, area float64) domain.Factors {
	weatherColor := "text-yellow-600"
	if rainfall > 50 {
		weatherColor = "text-green-600"
	}
	return domain.Factors{
		Weather: domain.Factor{
			Condition:   fmt.Sprintf("Normal monsoon expected, with %.0fmm rainfall forecast. Localized showers likely.", rainfall),
			Impact:      "Generally favorable conditions for crop growth. Watch for potential excess rainfall.",
			ImpactColor: weatherColor,
		},
		Supply: domain.Factor{
			Condition:   fmt.Sprintf("Area under cultivation is %.0f hectares. Good harvest expected.", area),
			Impact:      "Adequate supply anticipated, which may keep prices stable.",
			ImpactColor: "text-yellow-600",
		},
		Demand: domain.Factor{
			Condition:   "Domestic demand is steady, with moderate export interest.",
			Impact:      "Consistent demand provides a floor for prices. No significant spikes expected.",
			ImpactColor: "text-green-600",
		},
	}
}

func modelRecommendations() domain.Recommendations {
	return domain.Recommendations{
		SellTime:      "The model suggests a moderate upward trend in the next 2-3 months. Consider selling during peak seasonal demand.",
		TrendAnalysis: "Predicted trend shows slight seasonality with overall stability. Long-term (6-12 months) prices are expected to remain within a narrow range.",
		AlertsEnabled: true,
	}
}
