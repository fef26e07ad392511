package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"educonsult-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware catches errors bubbling out of handlers and
// maps the service error taxonomy to HTTP status codes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if kind, ok := apperror.KindOf(err); ok {
			status := fiber.StatusInternalServerError
			switch kind {
			case apperror.KindValidation:
				status = fiber.StatusBadRequest
			case apperror.KindNotFound:
				status = fiber.StatusNotFound
			case apperror.KindConflict:
				status = fiber.StatusConflict
			case apperror.KindAuthorization:
				status = fiber.StatusForbidden
			case apperror.KindIntegrity:
				status = fiber.StatusInternalServerError
			}
			return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, err.Error()))
	}
}
