package unitofwork

import (
	"context"

	"secure-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SessionRepository() contract.SessionRepository
	QuestionRepository() contract.QuestionRepository
	AnswerRepository() contract.AnswerRepository
}
