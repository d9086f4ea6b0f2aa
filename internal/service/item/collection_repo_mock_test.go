package item

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	CountOwnedFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)

	calls struct {
		CountOwned []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Ids    []uuid.UUID
		}
	}
	lockCountOwned sync.RWMutex
}

func (mock *collectionRepoMock) CountOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if mock.CountOwnedFunc == nil {
		panic("collectionRepoMock.CountOwnedFunc: method is nil but collectionRepo.CountOwned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ids    []uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		Ids:    ids,
	}
	mock.lockCountOwned.Lock()
	mock.calls.CountOwned = append(mock.calls.CountOwned, callInfo)
	mock.lockCountOwned.Unlock()
	return mock.CountOwnedFunc(ctx, userID, ids)
}

func (mock *collectionRepoMock) CountOwnedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Ids    []uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Ids    []uuid.UUID
	}
	mock.lockCountOwned.RLock()
	calls = mock.calls.CountOwned
	mock.lockCountOwned.RUnlock()
	return calls
}
