package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vitalis/internal/services"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps validation errors to 400 and hides anything else
// behind a generic 500, logging the cause.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	for _, known := range []error{
		services.ErrDayInvalid,
		services.ErrDayInFuture,
		services.ErrRangeFromInvalid,
		services.ErrRangeToInvalid,
		services.ErrRangeInvalid,
		services.ErrRangeTooLong,
		services.ErrCycleStartInvalid,
		services.ErrCycleStartInFuture,
		services.ErrCycleLengthInvalid,
		services.ErrCycleStartTooOld,
		services.ErrActivityInvalid,
		services.ErrBMIMeasurementInvalid,
		services.ErrWeakPassword,
		services.ErrAuthEmailInvalid,
	} {
		if errors.Is(err, known) {
			return apiError(c, fiber.StatusBadRequest, known.Error())
		}
	}

	handler.logger.Error(fallback, zap.String("path", c.Path()), zap.Error(err))
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not found")
}
