package memory

import (
	"context"
	"fmt"

	"secure-chat-be/internal/repository/contract"
	"secure-chat-be/internal/repository/unitofwork"
)

type Factory struct {
	Store *Store
}

func NewFactory(store *Store) *Factory {
	return &Factory{Store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.Store}
}

// unitOfWork snapshots the store on Begin and restores it on Rollback, so
// the services' transactional paths behave like the real implementation.
type unitOfWork struct {
	store *Store
	inTx  bool
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return fmt.Errorf("transaction already started")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.takeSnapshot()
	u.inTx = true
	return nil
}

func (u *unitOfWork) Commit() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to commit")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.dropSnapshot()
	u.inTx = false
	return nil
}

func (u *unitOfWork) Rollback() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to rollback")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.restoreSnapshot()
	u.inTx = false
	return nil
}

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *unitOfWork) SessionRepository() contract.SessionRepository {
	return &sessionRepository{store: u.store}
}

func (u *unitOfWork) QuestionRepository() contract.QuestionRepository {
	return &questionRepository{store: u.store}
}

func (u *unitOfWork) AnswerRepository() contract.AnswerRepository {
	return &answerRepository{store: u.store}
}
