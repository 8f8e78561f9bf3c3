package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vitalis/internal/services"
)

type cycleStartInput struct {
	StartDate     string `json:"start_date" form:"start_date"`
	AverageLength int    `json:"average_length" form:"average_length"`
}

type cycleEstimateResponse struct {
	DaysRemaining int    `json:"days_remaining"`
	Status        string `json:"status"`
	CycleLength   int    `json:"cycle_length,omitempty"`
	ElapsedDays   int    `json:"elapsed_days"`
	NextStart     string `json:"next_start,omitempty"`
}

func newCycleEstimateResponse(estimate services.CycleEstimate) cycleEstimateResponse {
	response := cycleEstimateResponse{
		DaysRemaining: estimate.DaysRemaining(),
		Status:        string(estimate.Status),
		CycleLength:   estimate.CycleLength,
		ElapsedDays:   estimate.ElapsedDays,
	}
	if next, ok := estimate.PredictedStartDate(); ok {
		response.NextStart = services.FormatDay(next)
	}
	return response
}

func (handler *Handler) GetCycleEstimate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	estimate, err := handler.cycleService.Estimate(user.ID, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load cycle")
	}
	return c.JSON(newCycleEstimateResponse(estimate))
}

func (handler *Handler) LogCycleStart(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input cycleStartInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	now := handler.now()
	if _, err := handler.cycleService.LogCycleStart(user.ID, input.StartDate, input.AverageLength, now); err != nil {
		return handler.respondServiceError(c, err, "failed to save cycle")
	}

	estimate, err := handler.cycleService.Estimate(user.ID, now)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load cycle")
	}
	return c.Status(fiber.StatusCreated).JSON(newCycleEstimateResponse(estimate))
}
