package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"secure-chat-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(tokenService *token.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewJwtMiddleware(tokenService), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"user_id": ctx.Locals(LocalUserId),
			"email":   ctx.Locals(LocalEmail),
		})
	})
	return app
}

func TestJwtMiddlewareAcceptsValidToken(t *testing.T) {
	tokenService := token.NewService("test-secret", time.Minute)
	app := newProtectedApp(tokenService)

	userId := uuid.New()
	tokenStr, err := tokenService.Issue(userId, "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, userId.String(), payload["user_id"])
	assert.Equal(t, "user@example.com", payload["email"])
}

func TestJwtMiddlewareRejectsMissingHeader(t *testing.T) {
	tokenService := token.NewService("test-secret", time.Minute)
	app := newProtectedApp(tokenService)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsMalformedHeader(t *testing.T) {
	tokenService := token.NewService("test-secret", time.Minute)
	app := newProtectedApp(tokenService)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abcdef")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsTamperedToken(t *testing.T) {
	tokenService := token.NewService("test-secret", time.Minute)
	app := newProtectedApp(tokenService)

	other := token.NewService("other-secret", time.Minute)
	tokenStr, err := other.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload APIResponse[any]
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Invalid token", payload.Message)
}

func TestJwtMiddlewareReportsExpiredToken(t *testing.T) {
	tokenService := token.NewService("test-secret", time.Nanosecond)
	app := newProtectedApp(tokenService)

	tokenStr, err := tokenService.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload APIResponse[any]
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Token has expired", payload.Message)
}
