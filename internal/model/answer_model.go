package model

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:text;not null"`
	GeneratedBy string    `gorm:"type:varchar(50);not null;default:'chatbot'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Answer) TableName() string {
	return "answers"
}
