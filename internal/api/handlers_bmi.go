package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vitalis/internal/models"
	"github.com/terraincognita07/vitalis/internal/services"
)

type bmiInput struct {
	Date     string  `json:"date" form:"date"`
	HeightCm float64 `json:"height_cm" form:"height_cm"`
	WeightKg float64 `json:"weight_kg" form:"weight_kg"`
}

type bmiHistoryResponse struct {
	Range   services.DayRange  `json:"range"`
	Records []models.BMIRecord `json:"records"`
}

func (handler *Handler) GetBMIHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dayRange, records, err := handler.bmiService.History(user.ID, c.Query("from"), c.Query("to"), handler.now())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load bmi history")
	}
	return c.JSON(bmiHistoryResponse{Range: dayRange, Records: records})
}

func (handler *Handler) RecordBMI(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input bmiInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	now := handler.now()
	day := input.Date
	if day == "" {
		day = services.FormatDay(services.DateAtLocation(now, handler.location))
	}

	record, err := handler.bmiService.Record(*user, day, input.HeightCm, input.WeightKg, now)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to save bmi")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}
