package contract

import (
	"context"
	"time"

	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business specific
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
