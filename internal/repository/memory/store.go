// Package memory provides an in-memory implementation of the repository
// contracts and unit of work, used by service-level tests so ownership and
// transaction behavior can be exercised without a database.
package memory

import (
	"sync"

	"secure-chat-be/internal/entity"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	Users     map[uuid.UUID]*entity.User
	Sessions  map[uuid.UUID]*entity.Session
	Questions map[uuid.UUID]*entity.Question
	Answers   map[uuid.UUID]*entity.Answer

	// Error injection knobs for failure-path tests.
	UserCreateErr     error
	SessionCreateErr  error
	QuestionCreateErr error
	AnswerCreateErr   error

	snapshot *snapshot
}

type snapshot struct {
	users     map[uuid.UUID]*entity.User
	sessions  map[uuid.UUID]*entity.Session
	questions map[uuid.UUID]*entity.Question
	answers   map[uuid.UUID]*entity.Answer
}

func NewStore() *Store {
	return &Store{
		Users:     make(map[uuid.UUID]*entity.User),
		Sessions:  make(map[uuid.UUID]*entity.Session),
		Questions: make(map[uuid.UUID]*entity.Question),
		Answers:   make(map[uuid.UUID]*entity.Answer),
	}
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (s *Store) takeSnapshot() {
	s.snapshot = &snapshot{
		users:     copyMap(s.Users),
		sessions:  copyMap(s.Sessions),
		questions: copyMap(s.Questions),
		answers:   copyMap(s.Answers),
	}
}

func (s *Store) restoreSnapshot() {
	if s.snapshot == nil {
		return
	}
	s.Users = s.snapshot.users
	s.Sessions = s.snapshot.sessions
	s.Questions = s.snapshot.questions
	s.Answers = s.snapshot.answers
	s.snapshot = nil
}

func (s *Store) dropSnapshot() {
	s.snapshot = nil
}
