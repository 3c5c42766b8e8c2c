package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agripricepro/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, predictorSvc *service.PredictorService) {
	handler := NewHandler(predictorSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Dropdown reference data for the dashboard
		api.Get("/metadata", handler.GetMetadata)

		// Price trajectory prediction
		api.Post("/predict", handler.Predict)
	}
}
