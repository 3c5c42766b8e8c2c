// Package csvfile loads training records from a CSV export of the historical
// price dataset. The header row must carry every schema column by name;
// column order in the file does not matter.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/agripricepro/backend/internal/domain"
)

// CSVRepository implements domain.RecordRepository for a file on disk.
type CSVRepository struct {
	path string
}

// NewCSVRepository creates a repository reading from path.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

// LoadPriceRecords parses the whole file. Unparseable or empty numeric cells
// become NaN (imputed later by the training cleaner); a missing required
// column aborts with a diagnostic naming every absent column.
func (r *CSVRepository) LoadPriceRecords(ctx context.Context) ([]domain.PriceRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("csvfile: failed to open dataset %q: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csvfile: failed to read header of %q: %w", r.path, err)
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	required := append(append([]string{}, domain.CategoricalFeatures...), domain.NumericalFeatures...)
	required = append(required, domain.TargetColumn)
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csvfile: dataset %q is missing expected columns: %s", r.path, strings.Join(missing, ", "))
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvfile: failed to read rows of %q: %w", r.path, err)
	}

	out := make([]domain.PriceRecord, 0, len(records))
	for _, row := range records {
		cell := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		num := func(col string) float64 {
			v, err := strconv.ParseFloat(cell(col), 64)
			if err != nil {
				return math.NaN()
			}
			return v
		}

		out = append(out, domain.PriceRecord{
			CropType:     cell("crop_type"),
			CropCategory: cell("crop_category"),
			Season:       cell("season"),
			Country:      cell("country"),
			State:        cell("state"),
			District:     cell("district"),
			Market:       cell("market"),
			Month:        cell("month"),

			Year:              num("year"),
			RainfallMM:        num("rainfall_mm"),
			TemperatureC:      num("temperature_c"),
			AreaHectares:      num("area_hectares"),
			ProductionTonnes:  num("production_tonnes"),
			YieldKgPerHectare: num("yield_kg_per_hectare"),
			PreviousYearPrice: num("previous_year_price"),

			AveragePrice: num(domain.TargetColumn),
		})
	}

	return out, nil
}

// Health checks that the dataset file is readable.
func (r *CSVRepository) Health(ctx context.Context) error {
	if _, err := os.Stat(r.path); err != nil {
		return fmt.Errorf("csvfile: dataset %q not accessible: %w", r.path, err)
	}
	return nil
}
