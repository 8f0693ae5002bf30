package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"secure-chat-be/internal/access"
	"secure-chat-be/internal/events"
	"secure-chat-be/internal/pkg/logger"
	"secure-chat-be/internal/pkg/serverutils"
	"secure-chat-be/internal/pkg/token"
	"secure-chat-be/internal/repository/memory"
	"secure-chat-be/internal/service"
	"secure-chat-be/pkg/chatbot"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	app          *fiber.App
	store        *memory.Store
	tokenService *token.Service
}

type discardPublisher struct{}

func (discardPublisher) PublishChatTurn(evt *events.ChatTurnCompleted) error { return nil }

func newApiFixture(t *testing.T) *apiFixture {
	t.Helper()

	store := memory.NewStore()
	factory := memory.NewFactory(store)
	tokenService := token.NewService("api-test-secret", time.Minute)
	jwtMiddleware := serverutils.NewJwtMiddleware(tokenService)
	verifier := access.NewVerifier()
	nopLogger := logger.NewNopLogger()

	authService := service.NewAuthService(factory, tokenService)
	userService := service.NewUserService(factory)
	sessionService := service.NewSessionService(factory, verifier)
	chatService := service.NewChatService(factory, verifier, chatbot.NewEchoGenerator(), discardPublisher{}, nopLogger)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAuthController(authService, jwtMiddleware).RegisterRoutes(app)
	NewUserController(userService, jwtMiddleware).RegisterRoutes(app)
	NewChatController(sessionService, chatService, jwtMiddleware).RegisterRoutes(app)

	return &apiFixture{app: app, store: store, tokenService: tokenService}
}

func (f *apiFixture) doJSON(t *testing.T, method, path, bearer string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var envelope map[string]json.RawMessage
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &envelope)
	}
	return resp, envelope
}

func (f *apiFixture) registerAndLogin(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()

	resp, _ := f.doJSON(t, "POST", "/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret-pass",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, envelope := f.doJSON(t, "POST", "/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret-pass",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tokenData struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &tokenData))

	claims, err := f.tokenService.Verify(tokenData.AccessToken)
	require.NoError(t, err)
	return claims.UserId, tokenData.AccessToken
}

func TestRegisterLoginAndMe(t *testing.T) {
	f := newApiFixture(t)

	userId, bearer := f.registerAndLogin(t, "ada@example.com")

	resp, envelope := f.doJSON(t, "GET", "/auth/me", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me struct {
		Id    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &me))
	assert.Equal(t, userId, me.Id)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestRegisterValidation(t *testing.T) {
	f := newApiFixture(t)

	resp, _ := f.doJSON(t, "POST", "/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "secret-pass",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = f.doJSON(t, "POST", "/auth/register", "", map[string]string{
		"email":    "short@example.com",
		"password": "tiny",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDuplicateRegistrationIsBadRequest(t *testing.T) {
	f := newApiFixture(t)

	f.registerAndLogin(t, "ada@example.com")

	resp, _ := f.doJSON(t, "POST", "/auth/register", "", map[string]string{
		"email":    "ada@example.com",
		"password": "another-pass",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	f := newApiFixture(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/auth/me"},
		{"GET", "/chat/users/me"},
		{"GET", "/chat/sessions/"},
		{"POST", "/chat/"},
	} {
		resp, _ := f.doJSON(t, route.method, route.path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	f := newApiFixture(t)

	userId, bearer := f.registerAndLogin(t, "ada@example.com")

	// Create
	resp, envelope := f.doJSON(t, "POST", "/chat/sessions/", bearer, map[string]interface{}{
		"user_id":       userId,
		"session_title": "http session",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &created))

	// List
	resp, envelope = f.doJSON(t, "GET", "/chat/sessions/", bearer, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.Id, list[0].Id)

	// Chat turn
	resp, envelope = f.doJSON(t, "POST", "/chat/", bearer, map[string]interface{}{
		"session_id": created.Id,
		"question":   "hello there",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var turn struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &turn))
	assert.Equal(t, "hello there", turn.Question)
	assert.Contains(t, turn.Answer, "hello there")

	// Conversation history
	resp, envelope = f.doJSON(t, "GET", "/chat/sessions/"+created.Id.String()+"/conversation", bearer, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var history struct {
		Conversation []struct {
			Question string `json:"question"`
			Answers  []struct {
				Content string `json:"content"`
			} `json:"answers"`
		} `json:"conversation"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &history))
	require.Len(t, history.Conversation, 1)
	require.Len(t, history.Conversation[0].Answers, 1)

	// Delete
	resp, _ = f.doJSON(t, "DELETE", "/chat/sessions/"+created.Id.String(), bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = f.doJSON(t, "GET", "/chat/sessions/"+created.Id.String(), bearer, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestForeignSessionIsForbiddenOverHTTP(t *testing.T) {
	f := newApiFixture(t)

	ownerId, ownerBearer := f.registerAndLogin(t, "owner@example.com")
	_, intruderBearer := f.registerAndLogin(t, "intruder@example.com")

	resp, envelope := f.doJSON(t, "POST", "/chat/sessions/", ownerBearer, map[string]interface{}{
		"user_id": ownerId,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &created))

	resp, _ = f.doJSON(t, "GET", "/chat/sessions/"+created.Id.String(), intruderBearer, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = f.doJSON(t, "POST", "/chat/", intruderBearer, map[string]interface{}{
		"session_id": created.Id,
		"question":   "let me in",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpdateProfileOverHTTP(t *testing.T) {
	f := newApiFixture(t)

	_, bearer := f.registerAndLogin(t, "ada@example.com")

	resp, envelope := f.doJSON(t, "PUT", "/chat/users/me", bearer, map[string]string{
		"full_name": "Ada Lovelace",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile struct {
		FullName *string `json:"full_name"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &profile))
	require.NotNil(t, profile.FullName)
	assert.Equal(t, "Ada Lovelace", *profile.FullName)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	f := newApiFixture(t)

	_, bearer := f.registerAndLogin(t, "ada@example.com")

	resp, _ := f.doJSON(t, "POST", "/auth/logout", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The token keeps working, logout is stateless.
	resp, _ = f.doJSON(t, "GET", "/auth/me", bearer, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
