package entity

import (
	"time"

	"github.com/google/uuid"
)

const GeneratedByChatbot = "chatbot"

// Answer belongs to exactly one Question. Access follows the
// Answer -> Question -> Session -> User chain.
type Answer struct {
	Id          uuid.UUID
	QuestionId  uuid.UUID
	Content     string
	GeneratedBy string
	CreatedAt   time.Time
}
