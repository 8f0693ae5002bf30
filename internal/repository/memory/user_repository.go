package memory

import (
	"context"
	"time"

	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.UserCreateErr != nil {
		return r.store.UserCreateErr
	}
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	copied := *user
	r.store.Users[user.Id] = &copied
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.Users[user.Id] = &copied
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f := buildFilter(specs)
	for _, u := range r.store.Users {
		if f.id != nil && u.Id != *f.id {
			continue
		}
		if f.email != nil && u.Email != *f.email {
			continue
		}
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f := buildFilter(specs)
	var count int64
	for _, u := range r.store.Users {
		if f.id != nil && u.Id != *f.id {
			continue
		}
		if f.email != nil && u.Email != *f.email {
			continue
		}
		count++
	}
	return count, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.Users[id]; ok {
		copied := *u
		copied.LastLogin = &at
		r.store.Users[id] = &copied
	}
	return nil
}
