package service

import (
	"context"
	"testing"

	"secure-chat-be/internal/dto"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(memory.NewFactory(store))
	ctx := context.Background()

	user := seedUser(store, "ada@example.com", "pw-irrelevant", true)

	res, err := svc.GetProfile(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Id, res.Id)
	assert.Equal(t, "ada@example.com", res.Email)

	_, err = svc.GetProfile(ctx, uuid.New())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateProfileSetsFullName(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(memory.NewFactory(store))
	ctx := context.Background()

	user := seedUser(store, "ada@example.com", "pw-irrelevant", true)

	name := "Ada Lovelace"
	res, err := svc.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	require.NotNil(t, res.FullName)
	assert.Equal(t, "Ada Lovelace", *res.FullName)
	assert.Equal(t, "Ada Lovelace", *store.Users[user.Id].FullName)
}

func TestUpdateProfileNilFieldLeavesValue(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(memory.NewFactory(store))
	ctx := context.Background()

	user := seedUser(store, "ada@example.com", "pw-irrelevant", true)
	name := "Ada Lovelace"
	user.FullName = &name
	store.Users[user.Id] = user

	res, err := svc.UpdateProfile(ctx, user.Id, &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	require.NotNil(t, res.FullName)
	assert.Equal(t, "Ada Lovelace", *res.FullName)
}
