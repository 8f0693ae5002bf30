package bootstrap

import (
	"time"

	"secure-chat-be/internal/access"
	"secure-chat-be/internal/config"
	"secure-chat-be/internal/controller"
	"secure-chat-be/internal/events"
	"secure-chat-be/internal/pkg/logger"
	"secure-chat-be/internal/pkg/serverutils"
	"secure-chat-be/internal/pkg/token"
	"secure-chat-be/internal/repository/unitofwork"
	"secure-chat-be/internal/service"
	"secure-chat-be/pkg/chatbot"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	UserController controller.IUserController
	ChatController controller.IChatController
	FileController controller.IFileController

	// Background services, run by main.go
	AuditConsumerService service.IAuditConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenService := token.NewService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	jwtMiddleware := serverutils.NewJwtMiddleware(tokenService)
	verifier := access.NewVerifier()

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(events.TopicChatTurnCompleted, pubSub)
	auditConsumerService := service.NewAuditConsumerService(pubSub, events.TopicChatTurnCompleted, sysLogger)

	// 3. Services
	generator := chatbot.NewEchoGenerator()

	authService := service.NewAuthService(uowFactory, tokenService)
	userService := service.NewUserService(uowFactory)
	sessionService := service.NewSessionService(uowFactory, verifier)
	chatService := service.NewChatService(uowFactory, verifier, generator, publisherService, sysLogger)
	fileService := service.NewFileService(cfg, sysLogger)

	// 4. Controllers
	authController := controller.NewAuthController(authService, jwtMiddleware)
	userController := controller.NewUserController(userService, jwtMiddleware)
	chatController := controller.NewChatController(sessionService, chatService, jwtMiddleware)
	fileController := controller.NewFileController(fileService, jwtMiddleware)

	return &Container{
		AuthController:       authController,
		UserController:       userController,
		ChatController:       chatController,
		FileController:       fileController,
		AuditConsumerService: auditConsumerService,
		Logger:               sysLogger,
	}
}
