package serverutils

import (
	"secure-chat-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// statusByKind is the single place where error kinds become HTTP statuses.
// Conflict maps to 400, existing clients expect that code for duplicates.
var statusByKind = map[apperrors.Kind]int{
	apperrors.KindValidation:      fiber.StatusBadRequest,
	apperrors.KindUnauthenticated: fiber.StatusUnauthorized,
	apperrors.KindForbidden:       fiber.StatusForbidden,
	apperrors.KindNotFound:        fiber.StatusNotFound,
	apperrors.KindConflict:        fiber.StatusBadRequest,
	apperrors.KindInternal:        fiber.StatusInternalServerError,
}

// ErrorHandlerMiddleware translates tagged service errors into HTTP
// responses at the outermost layer. Handlers and services below it
// return errors instead of writing statuses themselves.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status, ok := statusByKind[apperrors.KindOf(err)]
		if !ok {
			status = fiber.StatusInternalServerError
		}
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
