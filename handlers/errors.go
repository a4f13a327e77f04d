package handlers

import (
	"errors"

	"github.com/anjiri1684/tutor_booking/errdefs"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func mapErr(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, errdefs.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errdefs.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, errdefs.ErrUniqueViolation):
		return fiber.StatusConflict
	case errors.Is(err, errdefs.ErrNotEnoughTeachers):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders every error returned by a handler. Validation errors
// carry their field messages so the client can redisplay the form.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := mapErr(err)

		var ve *errdefs.ValidationError
		if errors.As(err, &ve) {
			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"code":   code,
				"errors": ve.Fields,
			})
		}

		message := err.Error()
		if code == fiber.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.Error(err))
			message = "internal server error"
		}

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": message,
		})
	}
}
