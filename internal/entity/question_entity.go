package entity

import (
	"time"

	"github.com/google/uuid"
)

// Question belongs to exactly one Session. Access is derived transitively
// through the session's owner.
type Question struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Content   string
	CreatedAt time.Time
}
