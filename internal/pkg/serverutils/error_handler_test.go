package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"secure-chat-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerMapsKindsToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.Validation("bad input"), fiber.StatusBadRequest},
		{"unauthenticated", apperrors.Unauthenticated("who are you"), fiber.StatusUnauthorized},
		{"forbidden", apperrors.Forbidden("not yours"), fiber.StatusForbidden},
		{"not found", apperrors.NotFound("gone"), fiber.StatusNotFound},
		{"conflict", apperrors.Conflict("duplicate"), fiber.StatusBadRequest},
		{"internal", apperrors.Internal("boom", nil), fiber.StatusInternalServerError},
		{"untagged", assertableError("plain failure"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/boom", func(ctx *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var payload APIResponse[any]
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.False(t, payload.Success)
			assert.Equal(t, tt.wantStatus, payload.Code)
			assert.NotEmpty(t, payload.Message)
		})
	}
}

type assertableError string

func (e assertableError) Error() string { return string(e) }

func TestErrorHandlerPassesSuccessThrough(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("fine", "payload"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
