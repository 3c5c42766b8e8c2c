// Command train runs the offline training job: it loads historical price
// records from PostgreSQL (when DATABASE_URL is set) or a CSV dataset,
// fits the preprocessing + random forest pipeline, and persists the model
// artifacts the serving process loads at startup. Any load, schema, or
// empty-dataset failure aborts the run with nothing written.
package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/agripricepro/backend/internal/artifact"
	"github.com/agripricepro/backend/internal/ml"
	"github.com/agripricepro/backend/internal/repository/csvfile"
	"github.com/agripricepro/backend/internal/repository/postgres"
	"github.com/agripricepro/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Pick the training data source: Postgres when configured, otherwise
	// the CSV dataset on disk.
	var repo service.RecordRepository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Could not connect to database: %v", err)
		}
		defer pool.Close()
		repo = postgres.NewPostgresRepository(pool)
		log.Println("Loading price records from PostgreSQL")
	} else {
		repo = csvfile.NewCSVRepository(cfg.DatasetPath)
		log.Printf("Loading price records from %q", cfg.DatasetPath)
	}

	records, err := repo.LoadPriceRecords(ctx)
	if err != nil {
		log.Fatalf("Failed to load training data: %v", err)
	}
	log.Printf("Loaded %d price records", len(records))

	log.Println("Training random forest regressor...")
	pipeline, score, err := ml.TrainFromRecords(records,
		ml.WithNEstimators(cfg.NEstimators),
		ml.WithRandomState(cfg.Seed),
	)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	log.Printf("Model trained. R-squared on training data: %.4f", score)

	unitMap := ml.BuildUnitMap(records)

	store := artifact.NewStore(cfg.ModelsDir)
	if err := store.Save(pipeline, unitMap); err != nil {
		log.Fatalf("Failed to save model artifacts: %v", err)
	}
	log.Printf("Pipeline and unit map saved to %q", cfg.ModelsDir)
}

type Config struct {
	DatabaseURL string
	DatasetPath string
	ModelsDir   string
	NEstimators int
	Seed        int64
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DatasetPath: getEnv("DATASET_PATH", "data/prices.csv"),
		ModelsDir:   getEnv("MODELS_DIR", "models"),
		NEstimators: getEnvInt("N_ESTIMATORS", 100),
		Seed:        int64(getEnvInt("RANDOM_SEED", 42)),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
