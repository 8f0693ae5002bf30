// Package access implements the ownership checks applied before any
// resource read or write. Checks always run existence first, ownership
// second, so a missing resource never leaks ownership information and a
// foreign resource never leaks its contents.
package access

import (
	"context"
	"time"

	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/repository/specification"
	"secure-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type Verifier struct {
	// owners caches session id -> owning user id. A session's owner is
	// immutable after creation, so stale entries cannot grant access to
	// the wrong user; deletion is handled by Invalidate.
	owners *cache.Cache
}

func NewVerifier() *Verifier {
	return &Verifier{
		owners: cache.New(30*time.Minute, 10*time.Minute),
	}
}

// RequireSession loads the session and checks the caller owns it.
// Missing session -> not found; wrong owner -> forbidden. The loaded
// session is returned so callers need no second lookup.
func (v *Verifier) RequireSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId, userId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperrors.Internal("failed to load session", err)
	}
	if session == nil {
		return nil, apperrors.NotFound("session not found")
	}

	v.owners.Set(sessionId.String(), session.UserId, cache.DefaultExpiration)

	if session.UserId != userId {
		return nil, apperrors.Forbidden("you do not have access to this session")
	}
	return session, nil
}

// VerifySessionOwner is RequireSession without the entity, with a cache
// fast path for the hot transitive checks.
func (v *Verifier) VerifySessionOwner(ctx context.Context, uow unitofwork.UnitOfWork, sessionId, userId uuid.UUID) error {
	if ownerId, found := v.owners.Get(sessionId.String()); found {
		if ownerId.(uuid.UUID) != userId {
			return apperrors.Forbidden("you do not have access to this session")
		}
		return nil
	}

	_, err := v.RequireSession(ctx, uow, sessionId, userId)
	return err
}

// VerifyQuestionOwner resolves the question's parent session and applies
// the session check transitively. It returns the session id so callers can
// follow the chain without a second lookup.
func (v *Verifier) VerifyQuestionOwner(ctx context.Context, uow unitofwork.UnitOfWork, questionId, userId uuid.UUID) (uuid.UUID, error) {
	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: questionId})
	if err != nil {
		return uuid.Nil, apperrors.Internal("failed to load question", err)
	}
	if question == nil {
		return uuid.Nil, apperrors.NotFound("question not found")
	}

	if err := v.VerifySessionOwner(ctx, uow, question.SessionId, userId); err != nil {
		return uuid.Nil, err
	}
	return question.SessionId, nil
}

// Invalidate drops a session from the owner cache, called on session delete.
func (v *Verifier) Invalidate(sessionId uuid.UUID) {
	v.owners.Delete(sessionId.String())
}
