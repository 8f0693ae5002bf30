package memory

import (
	"sort"

	"secure-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

// filter is the subset of query specifications the in-memory repositories
// understand, built by type-switching on the spec values.
type filter struct {
	id          *uuid.UUID
	email       *string
	userID      *uuid.UUID
	sessionID   *uuid.UUID
	questionID  *uuid.UUID
	questionIDs []uuid.UUID
	orderDesc   bool
}

func buildFilter(specs []specification.Specification) filter {
	var f filter
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id := s.ID
			f.id = &id
		case specification.ByEmail:
			email := s.Email
			f.email = &email
		case specification.UserOwnedBy:
			id := s.UserID
			f.userID = &id
		case specification.BySessionID:
			id := s.SessionID
			f.sessionID = &id
		case specification.ByQuestionID:
			id := s.QuestionID
			f.questionID = &id
		case specification.ByQuestionIDs:
			f.questionIDs = s.QuestionIDs
		case specification.OrderBy:
			f.orderDesc = s.Desc
		}
	}
	return f
}

func (f filter) matchesQuestionIDs(id uuid.UUID) bool {
	if f.questionIDs == nil {
		return true
	}
	for _, qid := range f.questionIDs {
		if qid == id {
			return true
		}
	}
	return false
}

func sortByTime[T any](items []T, at func(T) int64, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return at(items[i]) > at(items[j])
		}
		return at(items[i]) < at(items[j])
	})
}
