package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vitalis/internal/models"
	"github.com/terraincognita07/vitalis/internal/services"
)

type activitySummaryResponse struct {
	Summary services.ActivitySummary `json:"summary"`
	Days    []models.ActivityMetric  `json:"days"`
}

func (handler *Handler) GetActivitySummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, days, err := handler.activityService.Summary(user.ID, c.Query("from"), c.Query("to"), handler.now())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load activity")
	}
	return c.JSON(activitySummaryResponse{Summary: summary, Days: days})
}

func (handler *Handler) GetActivityToday(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	today, err := handler.activityService.Today(user.ID, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load activity")
	}
	return c.JSON(today)
}

func (handler *Handler) RecordActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.ActivityInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	metric, err := handler.activityService.Record(user.ID, c.Params("date"), input, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to save activity")
	}
	return c.JSON(metric)
}
