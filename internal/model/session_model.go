package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"` // ownership, immutable after creation
	SessionTitle *string   `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true"`
	StartedAt    time.Time `gorm:"autoCreateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
