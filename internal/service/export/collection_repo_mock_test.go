package export

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockList sync.RWMutex
}

func (mock *collectionRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	if mock.ListFunc == nil {
		panic("collectionRepoMock.ListFunc: method is nil but collectionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *collectionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
