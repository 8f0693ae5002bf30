package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserOwnedBy filters rows by their owning user
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// BySessionID filters questions by their parent session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByQuestionID filters answers by their parent question
type ByQuestionID struct {
	QuestionID uuid.UUID
}

func (s ByQuestionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_id = ?", s.QuestionID)
}

// ByQuestionIDs filters answers by a set of parent questions, used when
// assembling full conversation history in one query.
type ByQuestionIDs struct {
	QuestionIDs []uuid.UUID
}

func (s ByQuestionIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_id IN ?", s.QuestionIDs)
}
