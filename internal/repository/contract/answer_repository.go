package contract

import (
	"context"

	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/repository/specification"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error)
}
