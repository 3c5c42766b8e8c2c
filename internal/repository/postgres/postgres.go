package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agripricepro/backend/internal/domain"
)

// PostgresRepository implements domain.RecordRepository backed by a
// price_records table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// LoadPriceRecords reads every historical price row. NULL numerics map to
// NaN and NULL categoricals to the empty string so the training cleaner can
// impute them; a NULL average_price marks the row for dropping.
func (r *PostgresRepository) LoadPriceRecords(ctx context.Context) ([]domain.PriceRecord, error) {
	query := `
		SELECT crop_type, crop_category, season, country, state, district, market, month,
			   year, rainfall_mm, temperature_c, area_hectares,
			   production_tonnes, yield_kg_per_hectare, previous_year_price,
			   average_price
		FROM price_records
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query price records: %w", err)
	}
	defer rows.Close()

	var records []domain.PriceRecord
	for rows.Next() {
		var (
			cropType, cropCategory, season, country          *string
			state, district, market, month                   *string
			year, rainfall, temperature, area                *float64
			production, yieldPerHectare, prevPrice, avgPrice *float64
		)
		err := rows.Scan(
			&cropType, &cropCategory, &season, &country,
			&state, &district, &market, &month,
			&year, &rainfall, &temperature, &area,
			&production, &yieldPerHectare, &prevPrice,
			&avgPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan price record: %w", err)
		}
		records = append(records, domain.PriceRecord{
			CropType:     strValue(cropType),
			CropCategory: strValue(cropCategory),
			Season:       strValue(season),
			Country:      strValue(country),
			State:        strValue(state),
			District:     strValue(district),
			Market:       strValue(market),
			Month:        strValue(month),

			Year:              floatValue(year),
			RainfallMM:        floatValue(rainfall),
			TemperatureC:      floatValue(temperature),
			AreaHectares:      floatValue(area),
			ProductionTonnes:  floatValue(production),
			YieldKgPerHectare: floatValue(yieldPerHectare),
			PreviousYearPrice: floatValue(prevPrice),

			AveragePrice: floatValue(avgPrice),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: reading price records: %w", err)
	}

	return records, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatValue(f *float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return *f
}
