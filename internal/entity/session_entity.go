package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a conversation container. UserId is immutable after creation;
// only the owning user may read, modify or delete the session.
type Session struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	SessionTitle *string
	IsActive     bool
	StartedAt    time.Time
}
