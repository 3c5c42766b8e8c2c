package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/agripricepro/backend/internal/artifact"
	"github.com/agripricepro/backend/internal/delivery/http"
	"github.com/agripricepro/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Load model artifacts once per process lifetime. Missing or corrupt
	// artifacts are not fatal: the service runs in fallback mode until the
	// process restarts with artifacts in place.
	store := artifact.NewStore(cfg.ModelsDir)
	pipeline, unitMap, err := store.Load()
	if err != nil {
		if errors.Is(err, artifact.ErrNotFound) {
			log.Printf("Model artifacts not found in %q; serving deterministic simulations. Run cmd/train to fit a model.", cfg.ModelsDir)
		} else {
			log.Printf("Failed to load model artifacts: %v; serving deterministic simulations", err)
		}
		pipeline = nil
		unitMap = nil
	} else {
		log.Printf("Model pipeline and unit map loaded from %q", cfg.ModelsDir)
	}

	// Dependency Injection: Services
	predictorSvc := service.NewPredictorService(pipeline, unitMap)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "AgriPricePro API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, predictorSvc)

	// Graceful shutdown
	go func() {
		port := cfg.Port
		if port == "" {
			port = "8080"
		}
		log.Printf("Server starting on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

type Config struct {
	ModelsDir string
	Port      string
	Env       string
}

func loadConfig() *Config {
	return &Config{
		ModelsDir: getEnv("MODELS_DIR", "models"),
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
