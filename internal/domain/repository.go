package domain

import "context"

// RecordRepository defines the interface for loading historical price rows
// used as training input. Domain owns the interface; implementations live in
// internal/repository (Postgres, CSV file, in-memory mock).
type RecordRepository interface {
	// LoadPriceRecords returns every historical price row the source holds.
	LoadPriceRecords(ctx context.Context) ([]PriceRecord, error)

	// Health checks source availability.
	Health(ctx context.Context) error
}
