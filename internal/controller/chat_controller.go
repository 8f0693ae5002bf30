package controller

import (
	"secure-chat-be/internal/dto"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/pkg/serverutils"
	"secure-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	UpdateSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	ListQuestions(ctx *fiber.Ctx) error
	ListAnswers(ctx *fiber.Ctx) error
	Conversation(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
}

type chatController struct {
	sessionService service.ISessionService
	chatService    service.IChatService
	jwtMiddleware  fiber.Handler
}

func NewChatController(
	sessionService service.ISessionService,
	chatService service.IChatService,
	jwtMiddleware fiber.Handler,
) IChatController {
	return &chatController{
		sessionService: sessionService,
		chatService:    chatService,
		jwtMiddleware:  jwtMiddleware,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(c.jwtMiddleware)
	h.Post("/sessions/", c.CreateSession)
	h.Get("/sessions/", c.ListSessions)
	h.Get("/sessions/:id", c.ShowSession)
	h.Put("/sessions/:id", c.UpdateSession)
	h.Delete("/sessions/:id", c.DeleteSession)
	h.Get("/sessions/:id/questions", c.ListQuestions)
	h.Get("/sessions/:id/conversation", c.Conversation)
	h.Get("/questions/:id/answers", c.ListAnswers)
	h.Post("/", c.Ask)
}

func parsePathId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid id in path")
	}
	return id, nil
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.sessionService.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}

func (c *chatController) ShowSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parsePathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.sessionService.Get(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *chatController) UpdateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parsePathId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update session", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parsePathId(ctx)
	if err != nil {
		return err
	}

	if err := c.sessionService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted successfully", nil))
}

func (c *chatController) ListQuestions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parsePathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.sessionService.GetQuestions(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get questions", res))
}

func (c *chatController) ListAnswers(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parsePathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.sessionService.GetAnswers(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get answers", res))
}

func (c *chatController) Conversation(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := parsePathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.sessionService.GetConversation(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversation history", res))
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Ask(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process chat", res))
}
