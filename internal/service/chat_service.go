package service

import (
	"context"
	"time"

	"secure-chat-be/internal/access"
	"secure-chat-be/internal/dto"
	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/events"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/pkg/logger"
	"secure-chat-be/internal/repository/unitofwork"
	"secure-chat-be/pkg/chatbot"

	"github.com/google/uuid"
)

type IChatService interface {
	Ask(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	verifier         *access.Verifier
	generator        chatbot.Generator
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	verifier *access.Verifier,
	generator chatbot.Generator,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		verifier:         verifier,
		generator:        generator,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

// Ask is the main chat turn: ownership check, then question insert,
// answer generation and answer insert inside one transaction. A failure
// after the question insert rolls the question back, no orphan rows.
func (s *chatService) Ask(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifier.VerifySessionOwner(ctx, uow, req.SessionId, userId); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.Internal("failed to start chat transaction", err)
	}
	defer uow.Rollback()

	question := &entity.Question{
		Id:        uuid.New(),
		SessionId: req.SessionId,
		Content:   req.Question,
		CreatedAt: time.Now(),
	}
	if err := uow.QuestionRepository().Create(ctx, question); err != nil {
		return nil, apperrors.Internal("failed to create question", err)
	}

	answerContent, err := s.generator.Generate(req.Question)
	if err != nil {
		return nil, apperrors.Internal("failed to generate answer", err)
	}

	answer := &entity.Answer{
		Id:          uuid.New(),
		QuestionId:  question.Id,
		Content:     answerContent,
		GeneratedBy: s.generator.Name(),
		CreatedAt:   time.Now(),
	}
	if err := uow.AnswerRepository().Create(ctx, answer); err != nil {
		return nil, apperrors.Internal("failed to create answer", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperrors.Internal("failed to commit chat turn", err)
	}

	if err := s.publisherService.PublishChatTurn(&events.ChatTurnCompleted{
		UserId:     userId,
		SessionId:  req.SessionId,
		QuestionId: question.Id,
		AnswerId:   answer.Id,
		CreatedAt:  question.CreatedAt,
	}); err != nil {
		// The turn is committed; a lost audit event is logged, not fatal.
		s.logger.Warn("chat", "failed to publish chat turn event", map[string]interface{}{
			"error":      err.Error(),
			"session_id": req.SessionId.String(),
		})
	}

	return &dto.ChatResponse{
		QuestionId: question.Id,
		AnswerId:   answer.Id,
		Question:   question.Content,
		Answer:     answer.Content,
		CreatedAt:  question.CreatedAt,
	}, nil
}
