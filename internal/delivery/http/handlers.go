package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agripricepro/backend/internal/domain"
	"github.com/agripricepro/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	predictorSvc *service.PredictorService
}

// NewHandler creates a new handler
func NewHandler(predictorSvc *service.PredictorService) *Handler {
	return &Handler{predictorSvc: predictorSvc}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "agripricepro-backend",
		"version":  "1.0.0",
		"degraded": h.predictorSvc.Degraded(),
	})
}

// GetMetadata returns the static dropdown values. Collaborator-owned
// reference data; the prediction core never computes it.
func (h *Handler) GetMetadata(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"crop_categories":        domain.CropCategories,
		"crop_types_by_category": domain.CropTypesByCategory,
		"countries":              domain.Countries,
		"states_by_country":      domain.StatesByCountry,
		"seasons":                domain.Seasons,
	})
}

// Predict produces a price trajectory for the requested crop/season/region
func (h *Handler) Predict(c *fiber.Ctx) error {
	ctx := c.Context()

	var req domain.PredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.predictorSvc.Predict(ctx, req)
	if err != nil {
		var missing *domain.MissingFieldsError
		if errors.As(err, &missing) {
			return fiber.NewError(fiber.StatusBadRequest, missing.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get prediction")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
