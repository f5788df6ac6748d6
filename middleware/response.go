package middleware

import (
	"coursehub/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorResponse maps a service error to its HTTP status. Unexpected errors are logged
// and answered with a generic message.
func ErrorResponse(c *fiber.Ctx, err error, log *logrus.Logger) error {
	kind := apperror.KindOf(err)
	if kind == apperror.Unexpected {
		log.WithFields(logrus.Fields{
			"method":    c.Method(),
			"path":      c.Path(),
			"requestId": c.Locals("requestid"),
		}).WithError(err).Error("request failed")
	}
	return JsonResponse(c, StatusFor(kind), false, apperror.MessageOf(err), nil)
}

func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.NotFound:
		return fiber.StatusNotFound
	case apperror.AuthenticationFailed, apperror.Unauthorized:
		return fiber.StatusUnauthorized
	case apperror.ValidationFailed:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
