package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	UserId       uuid.UUID `json:"user_id" validate:"required"`
	SessionTitle *string   `json:"session_title"`
}

// UpdateSessionRequest is an explicit partial update, nil means "not sent".
type UpdateSessionRequest struct {
	SessionTitle *string `json:"session_title" validate:"omitempty,min=1"`
}

type SessionResponse struct {
	Id           uuid.UUID `json:"id"`
	UserId       uuid.UUID `json:"user_id"`
	SessionTitle *string   `json:"session_title"`
	IsActive     bool      `json:"is_active"`
	StartedAt    time.Time `json:"started_at"`
}

type QuestionResponse struct {
	Id        uuid.UUID `json:"id"`
	SessionId uuid.UUID `json:"session_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type AnswerResponse struct {
	Id          uuid.UUID `json:"id"`
	QuestionId  uuid.UUID `json:"question_id"`
	Content     string    `json:"content"`
	GeneratedBy string    `json:"generated_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Question  string    `json:"question" validate:"required,min=1"`
}

type ChatResponse struct {
	QuestionId uuid.UUID `json:"question_id"`
	AnswerId   uuid.UUID `json:"answer_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
}

type ConversationItem struct {
	QuestionId   uuid.UUID        `json:"question_id"`
	Question     string           `json:"question"`
	QuestionTime time.Time        `json:"question_time"`
	Answers      []AnswerResponse `json:"answers"`
}

type ConversationHistoryResponse struct {
	SessionId    uuid.UUID          `json:"session_id"`
	Conversation []ConversationItem `json:"conversation"`
}
