package export

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	ListAllFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.SavedItem, error)
	ListTagsFunc func(ctx context.Context, userID uuid.UUID) ([]string, error)

	calls struct {
		ListAll []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListTags []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListAll  sync.RWMutex
	lockListTags sync.RWMutex
}

func (mock *itemRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SavedItem, error) {
	if mock.ListAllFunc == nil {
		panic("itemRepoMock.ListAllFunc: method is nil but itemRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *itemRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListTags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if mock.ListTagsFunc == nil {
		panic("itemRepoMock.ListTagsFunc: method is nil but itemRepo.ListTags was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListTags.Lock()
	mock.calls.ListTags = append(mock.calls.ListTags, callInfo)
	mock.lockListTags.Unlock()
	return mock.ListTagsFunc(ctx, userID)
}

func (mock *itemRepoMock) ListTagsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListTags.RLock()
	calls = mock.calls.ListTags
	mock.lockListTags.RUnlock()
	return calls
}
