package serverutils

import (
	"strings"

	"secure-chat-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// Locals keys populated by the JWT middleware for downstream handlers.
const (
	LocalUserId = "user_id"
	LocalEmail  = "email"
)

// NewJwtMiddleware returns a middleware that extracts the bearer token from
// the Authorization header, verifies it through the token service and
// attaches the decoded identity to the request context. Handlers behind it
// never see unauthenticated requests.
func NewJwtMiddleware(tokenService *token.Service) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}
		tokenStr := authHeader[7:]

		claims, err := tokenService.Verify(tokenStr)
		if err != nil {
			msg := "Invalid token"
			if err == token.ErrTokenExpired {
				msg = "Token has expired"
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, msg))
		}

		ctx.Locals(LocalUserId, claims.UserId.String())
		ctx.Locals(LocalEmail, claims.Email)
		return ctx.Next()
	}
}
