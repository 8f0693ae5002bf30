package service

import (
	"context"
	"fmt"
	"time"

	"secure-chat-be/internal/access"
	"secure-chat-be/internal/dto"
	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/repository/specification"
	"secure-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	Get(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionResponse, error)
	Update(ctx context.Context, userId, sessionId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, userId, sessionId uuid.UUID) error

	GetQuestions(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.QuestionResponse, error)
	GetAnswers(ctx context.Context, userId, questionId uuid.UUID) ([]*dto.AnswerResponse, error)
	GetConversation(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ConversationHistoryResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	verifier   *access.Verifier
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, verifier *access.Verifier) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		verifier:   verifier,
	}
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	// The request carries a user id; creating sessions for anyone else is
	// forbidden regardless of whether that user exists.
	if req.UserId != userId {
		return nil, apperrors.Forbidden("cannot create a session for another user")
	}

	title := req.SessionTitle
	if title == nil || *title == "" {
		generated := fmt.Sprintf("Chat Session %s", time.Now().Format("2006-01-02 15:04"))
		title = &generated
	}

	session := &entity.Session{
		Id:           uuid.New(),
		UserId:       userId,
		SessionTitle: title,
		IsActive:     true,
		StartedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, apperrors.Internal("failed to create session", err)
	}

	return toSessionResponse(session), nil
}

func (s *sessionService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "started_at", Desc: true},
	)
	if err != nil {
		return nil, apperrors.Internal("failed to load sessions", err)
	}

	out := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionResponse(session))
	}
	return out, nil
}

func (s *sessionService) Get(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.verifier.RequireSession(ctx, uow, sessionId, userId)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) Update(ctx context.Context, userId, sessionId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.verifier.RequireSession(ctx, uow, sessionId, userId)
	if err != nil {
		return nil, err
	}

	if req.SessionTitle != nil {
		session.SessionTitle = req.SessionTitle
	}

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperrors.Internal("failed to update session", err)
	}

	return toSessionResponse(session), nil
}

func (s *sessionService) Delete(ctx context.Context, userId, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifier.VerifySessionOwner(ctx, uow, sessionId, userId); err != nil {
		return err
	}

	if err := uow.SessionRepository().Delete(ctx, sessionId); err != nil {
		return apperrors.Internal("failed to delete session", err)
	}

	s.verifier.Invalidate(sessionId)
	return nil
}

func (s *sessionService) GetQuestions(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifier.VerifySessionOwner(ctx, uow, sessionId, userId); err != nil {
		return nil, err
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperrors.Internal("failed to load questions", err)
	}

	out := make([]*dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		out = append(out, toQuestionResponse(question))
	}
	return out, nil
}

func (s *sessionService) GetAnswers(ctx context.Context, userId, questionId uuid.UUID) ([]*dto.AnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.verifier.VerifyQuestionOwner(ctx, uow, questionId, userId); err != nil {
		return nil, err
	}

	answers, err := uow.AnswerRepository().FindAll(ctx,
		specification.ByQuestionID{QuestionID: questionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperrors.Internal("failed to load answers", err)
	}

	out := make([]*dto.AnswerResponse, 0, len(answers))
	for _, answer := range answers {
		out = append(out, toAnswerResponse(answer))
	}
	return out, nil
}

func (s *sessionService) GetConversation(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ConversationHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifier.VerifySessionOwner(ctx, uow, sessionId, userId); err != nil {
		return nil, err
	}

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperrors.Internal("failed to load questions", err)
	}

	history := &dto.ConversationHistoryResponse{
		SessionId:    sessionId,
		Conversation: make([]dto.ConversationItem, 0, len(questions)),
	}
	if len(questions) == 0 {
		return history, nil
	}

	questionIds := make([]uuid.UUID, 0, len(questions))
	for _, question := range questions {
		questionIds = append(questionIds, question.Id)
	}

	answers, err := uow.AnswerRepository().FindAll(ctx,
		specification.ByQuestionIDs{QuestionIDs: questionIds},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperrors.Internal("failed to load answers", err)
	}

	answersByQuestion := make(map[uuid.UUID][]dto.AnswerResponse, len(questions))
	for _, answer := range answers {
		answersByQuestion[answer.QuestionId] = append(answersByQuestion[answer.QuestionId], *toAnswerResponse(answer))
	}

	for _, question := range questions {
		item := dto.ConversationItem{
			QuestionId:   question.Id,
			Question:     question.Content,
			QuestionTime: question.CreatedAt,
			Answers:      answersByQuestion[question.Id],
		}
		if item.Answers == nil {
			item.Answers = []dto.AnswerResponse{}
		}
		history.Conversation = append(history.Conversation, item)
	}

	return history, nil
}

func toSessionResponse(session *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:           session.Id,
		UserId:       session.UserId,
		SessionTitle: session.SessionTitle,
		IsActive:     session.IsActive,
		StartedAt:    session.StartedAt,
	}
}

func toQuestionResponse(question *entity.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		Id:        question.Id,
		SessionId: question.SessionId,
		Content:   question.Content,
		CreatedAt: question.CreatedAt,
	}
}

func toAnswerResponse(answer *entity.Answer) *dto.AnswerResponse {
	return &dto.AnswerResponse{
		Id:          answer.Id,
		QuestionId:  answer.QuestionId,
		Content:     answer.Content,
		GeneratedBy: answer.GeneratedBy,
		CreatedAt:   answer.CreatedAt,
	}
}
