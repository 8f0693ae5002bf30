package controller

import (
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/pkg/serverutils"
	"secure-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService   service.IFileService
	jwtMiddleware fiber.Handler
}

func NewFileController(fileService service.IFileService, jwtMiddleware fiber.Handler) IFileController {
	return &fileController{
		fileService:   fileService,
		jwtMiddleware: jwtMiddleware,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/file")
	h.Get("/health", c.Health)
	h.Post("/upload-file/", c.jwtMiddleware, c.Upload)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals(serverutils.LocalUserId).(string)
	userId, _ := uuid.Parse(userIdStr)

	file, err := ctx.FormFile("file")
	if err != nil {
		return apperrors.Validation("missing file in multipart form")
	}

	res, err := c.fileService.Upload(ctx.Context(), userId, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("File uploaded successfully", res))
}

func (c *fileController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":  "healthy",
		"service": "file-upload",
	})
}
