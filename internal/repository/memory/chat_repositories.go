package memory

import (
	"context"
	"time"

	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type sessionRepository struct {
	store *Store
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.SessionCreateErr != nil {
		return r.store.SessionCreateErr
	}
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	copied := *session
	r.store.Sessions[session.Id] = &copied
	return nil
}

func (r *sessionRepository) Update(ctx context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *session
	r.store.Sessions[session.Id] = &copied
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.Sessions, id)
	return nil
}

func (r *sessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f := buildFilter(specs)
	for _, s := range r.store.Sessions {
		if f.id != nil && s.Id != *f.id {
			continue
		}
		if f.userID != nil && s.UserId != *f.userID {
			continue
		}
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (r *sessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f := buildFilter(specs)
	var out []*entity.Session
	for _, s := range r.store.Sessions {
		if f.id != nil && s.Id != *f.id {
			continue
		}
		if f.userID != nil && s.UserId != *f.userID {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	sortByTime(out, func(s *entity.Session) int64 { return s.StartedAt.UnixNano() }, f.orderDesc)
	return out, nil
}

func (r *sessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	sessions, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(sessions)), nil
}

type questionRepository struct {
	store *Store
}

func (r *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.QuestionCreateErr != nil {
		return r.store.QuestionCreateErr
	}
	if question.Id == uuid.Nil {
		question.Id = uuid.New()
	}
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}
	copied := *question
	r.store.Questions[question.Id] = &copied
	return nil
}

func (r *questionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f := buildFilter(specs)
	for _, q := range r.store.Questions {
		if f.id != nil && q.Id != *f.id {
			continue
		}
		if f.sessionID != nil && q.SessionId != *f.sessionID {
			continue
		}
		copied := *q
		return &copied, nil
	}
	return nil, nil
}

func (r *questionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f := buildFilter(specs)
	var out []*entity.Question
	for _, q := range r.store.Questions {
		if f.id != nil && q.Id != *f.id {
			continue
		}
		if f.sessionID != nil && q.SessionId != *f.sessionID {
			continue
		}
		copied := *q
		out = append(out, &copied)
	}
	sortByTime(out, func(q *entity.Question) int64 { return q.CreatedAt.UnixNano() }, f.orderDesc)
	return out, nil
}

type answerRepository struct {
	store *Store
}

func (r *answerRepository) Create(ctx context.Context, answer *entity.Answer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.AnswerCreateErr != nil {
		return r.store.AnswerCreateErr
	}
	if answer.Id == uuid.Nil {
		answer.Id = uuid.New()
	}
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now()
	}
	copied := *answer
	r.store.Answers[answer.Id] = &copied
	return nil
}

func (r *answerRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f := buildFilter(specs)
	var out []*entity.Answer
	for _, a := range r.store.Answers {
		if f.questionID != nil && a.QuestionId != *f.questionID {
			continue
		}
		if !f.matchesQuestionIDs(a.QuestionId) {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	sortByTime(out, func(a *entity.Answer) int64 { return a.CreatedAt.UnixNano() }, f.orderDesc)
	return out, nil
}
