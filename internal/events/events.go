// Package events defines the audit events published on the in-process bus.
package events

import (
	"time"

	"github.com/google/uuid"
)

const TopicChatTurnCompleted = "chat.turn.completed"

// ChatTurnCompleted is published after a chat turn commits, carrying the
// ids needed to audit who asked what in which session.
type ChatTurnCompleted struct {
	UserId     uuid.UUID `json:"user_id"`
	SessionId  uuid.UUID `json:"session_id"`
	QuestionId uuid.UUID `json:"question_id"`
	AnswerId   uuid.UUID `json:"answer_id"`
	CreatedAt  time.Time `json:"created_at"`
}
