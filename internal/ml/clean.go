package ml

import (
	"errors"
	"math"

	"github.com/agripricepro/backend/internal/domain"
)

// CleanRecords turns raw price records into the matrices the pipeline fits
// on. Rows without a target are dropped outright (never imputed); remaining
// missing numerics take the column mean and missing categoricals the column
// mode, falling back to the placeholder category when a column has no mode.
func CleanRecords(records []domain.PriceRecord) (num [][]float64, cat [][]string, y []float64, err error) {
	for _, r := range records {
		if !r.HasTarget() {
			continue
		}
		num = append(num, r.Numericals())
		cat = append(cat, r.Categoricals())
		y = append(y, r.AveragePrice)
	}
	if len(y) == 0 {
		return nil, nil, nil, errors.New("ml: dataset is empty after cleaning, cannot train")
	}

	imputeNumeric(num)
	imputeCategorical(cat)
	return num, cat, y, nil
}

func imputeNumeric(num [][]float64) {
	cols := len(num[0])
	for j := 0; j < cols; j++ {
		sum, count := 0.0, 0
		for i := range num {
			if !math.IsNaN(num[i][j]) {
				sum += num[i][j]
				count++
			}
		}
		mean := 0.0
		if count > 0 {
			mean = sum / float64(count)
		}
		for i := range num {
			if math.IsNaN(num[i][j]) {
				num[i][j] = mean
			}
		}
	}
}

func imputeCategorical(cat [][]string) {
	cols := len(cat[0])
	for j := 0; j < cols; j++ {
		counts := map[string]int{}
		for i := range cat {
			if cat[i][j] != "" {
				counts[cat[i][j]]++
			}
		}
		mode := domain.PlaceholderCategory
		best := 0
		for v, c := range counts {
			if c > best {
				mode, best = v, c
			}
		}
		for i := range cat {
			if cat[i][j] == "" {
				cat[i][j] = mode
			}
		}
	}
}
