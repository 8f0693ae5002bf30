package access

import (
	"context"
	"testing"
	"time"

	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSession(store *memory.Store, ownerId uuid.UUID) *entity.Session {
	session := &entity.Session{
		Id:        uuid.New(),
		UserId:    ownerId,
		IsActive:  true,
		StartedAt: time.Now(),
	}
	store.Sessions[session.Id] = session
	return session
}

func TestRequireSessionOwner(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	verifier := NewVerifier()
	ctx := context.Background()

	ownerId := uuid.New()
	session := seedSession(store, ownerId)

	got, err := verifier.RequireSession(ctx, factory.NewUnitOfWork(ctx), session.Id, ownerId)
	require.NoError(t, err)
	assert.Equal(t, session.Id, got.Id)
}

func TestRequireSessionMissingIsNotFound(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	verifier := NewVerifier()
	ctx := context.Background()

	_, err := verifier.RequireSession(ctx, factory.NewUnitOfWork(ctx), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRequireSessionForeignIsForbidden(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	verifier := NewVerifier()
	ctx := context.Background()

	session := seedSession(store, uuid.New())

	_, err := verifier.RequireSession(ctx, factory.NewUnitOfWork(ctx), session.Id, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestVerifySessionOwnerUsesCache(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	verifier := NewVerifier()
	ctx := context.Background()

	ownerId := uuid.New()
	session := seedSession(store, ownerId)

	// First check populates the cache.
	require.NoError(t, verifier.VerifySessionOwner(ctx, factory.NewUnitOfWork(ctx), session.Id, ownerId))

	// Remove the row; the cached owner still answers.
	delete(store.Sessions, session.Id)
	assert.NoError(t, verifier.VerifySessionOwner(ctx, factory.NewUnitOfWork(ctx), session.Id, ownerId))

	// A different caller is still refused from the cache.
	err := verifier.VerifySessionOwner(ctx, factory.NewUnitOfWork(ctx), session.Id, uuid.New())
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	// After invalidation the check goes back to the store.
	verifier.Invalidate(session.Id)
	err = verifier.VerifySessionOwner(ctx, factory.NewUnitOfWork(ctx), session.Id, ownerId)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestVerifyQuestionOwnerFollowsChain(t *testing.T) {
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	verifier := NewVerifier()
	ctx := context.Background()

	ownerId := uuid.New()
	session := seedSession(store, ownerId)
	question := &entity.Question{
		Id:        uuid.New(),
		SessionId: session.Id,
		Content:   "what is up",
		CreatedAt: time.Now(),
	}
	store.Questions[question.Id] = question

	sessionId, err := verifier.VerifyQuestionOwner(ctx, factory.NewUnitOfWork(ctx), question.Id, ownerId)
	require.NoError(t, err)
	assert.Equal(t, session.Id, sessionId)

	_, err = verifier.VerifyQuestionOwner(ctx, factory.NewUnitOfWork(ctx), question.Id, uuid.New())
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = verifier.VerifyQuestionOwner(ctx, factory.NewUnitOfWork(ctx), uuid.New(), ownerId)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
