package library

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lumenapp/lumen/internal/domain"
)

var (
	_ savedStore = &savedStoreMock{}
	_ txManager  = &txManagerMock{}
)

type savedStoreMock struct {
	ListFunc       func(ctx context.Context, userKey string) ([]domain.SavedPhrase, error)
	ExistsFunc     func(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error)
	SaveFunc       func(ctx context.Context, sp domain.SavedPhrase) error
	DeleteFunc     func(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error)
	LockPhraseFunc func(ctx context.Context, userKey string, phraseID uuid.UUID) error

	lock            sync.RWMutex
	saveCalls       []domain.SavedPhrase
	deleteCalls     []uuid.UUID
	lockPhraseCalls []uuid.UUID
}

func (mock *savedStoreMock) List(ctx context.Context, userKey string) ([]domain.SavedPhrase, error) {
	if mock.ListFunc == nil {
		panic("savedStoreMock.ListFunc: method is nil but savedStore.List was just called")
	}
	return mock.ListFunc(ctx, userKey)
}

func (mock *savedStoreMock) Exists(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("savedStoreMock.ExistsFunc: method is nil but savedStore.Exists was just called")
	}
	return mock.ExistsFunc(ctx, userKey, phraseID)
}

func (mock *savedStoreMock) Save(ctx context.Context, sp domain.SavedPhrase) error {
	if mock.SaveFunc == nil {
		panic("savedStoreMock.SaveFunc: method is nil but savedStore.Save was just called")
	}
	mock.lock.Lock()
	mock.saveCalls = append(mock.saveCalls, sp)
	mock.lock.Unlock()
	return mock.SaveFunc(ctx, sp)
}

func (mock *savedStoreMock) SaveCalls() []domain.SavedPhrase {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.saveCalls
}

func (mock *savedStoreMock) Delete(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("savedStoreMock.DeleteFunc: method is nil but savedStore.Delete was just called")
	}
	mock.lock.Lock()
	mock.deleteCalls = append(mock.deleteCalls, phraseID)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userKey, phraseID)
}

func (mock *savedStoreMock) DeleteCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.deleteCalls
}

func (mock *savedStoreMock) LockPhrase(ctx context.Context, userKey string, phraseID uuid.UUID) error {
	if mock.LockPhraseFunc == nil {
		panic("savedStoreMock.LockPhraseFunc: method is nil but savedStore.LockPhrase was just called")
	}
	mock.lock.Lock()
	mock.lockPhraseCalls = append(mock.lockPhraseCalls, phraseID)
	mock.lock.Unlock()
	return mock.LockPhraseFunc(ctx, userKey, phraseID)
}

func (mock *savedStoreMock) LockPhraseCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.lockPhraseCalls
}

type txManagerMock struct {
	lock  sync.Mutex
	calls int
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls++
	mock.lock.Unlock()
	return fn(ctx)
}

func (mock *txManagerMock) Calls() int {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls
}
