package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

var _ collectionService = &collectionServiceMock{}

type collectionServiceMock struct {
	CreateFunc func(ctx context.Context, user *domain.User, name string) (*domain.Collection, error)
	ListFunc   func(ctx context.Context, user *domain.User) ([]domain.Collection, error)
	RenameFunc func(ctx context.Context, user *domain.User, id uuid.UUID, name string) (*domain.Collection, error)
	DeleteFunc func(ctx context.Context, user *domain.User, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.User
			Name string
		}
		List []struct {
			Ctx  context.Context
			User *domain.User
		}
		Rename []struct {
			Ctx  context.Context
			User *domain.User
			Id   uuid.UUID
			Name string
		}
		Delete []struct {
			Ctx  context.Context
			User *domain.User
			Id   uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
	lockRename sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *collectionServiceMock) Create(ctx context.Context, user *domain.User, name string) (*domain.Collection, error) {
	if mock.CreateFunc == nil {
		panic("collectionServiceMock.CreateFunc: method is nil but collectionService.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
		Name string
	}{
		Ctx:  ctx,
		User: user,
		Name: name,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user, name)
}

func (mock *collectionServiceMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
		Name string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *collectionServiceMock) List(ctx context.Context, user *domain.User) ([]domain.Collection, error) {
	if mock.ListFunc == nil {
		panic("collectionServiceMock.ListFunc: method is nil but collectionService.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, user)
}

func (mock *collectionServiceMock) ListCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *collectionServiceMock) Rename(ctx context.Context, user *domain.User, id uuid.UUID, name string) (*domain.Collection, error) {
	if mock.RenameFunc == nil {
		panic("collectionServiceMock.RenameFunc: method is nil but collectionService.Rename was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
		Id   uuid.UUID
		Name string
	}{
		Ctx:  ctx,
		User: user,
		Id:   id,
		Name: name,
	}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, user, id, name)
}

func (mock *collectionServiceMock) RenameCalls() []struct {
	Ctx  context.Context
	User *domain.User
	Id   uuid.UUID
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
		Id   uuid.UUID
		Name string
	}
	mock.lockRename.RLock()
	calls = mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *collectionServiceMock) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("collectionServiceMock.DeleteFunc: method is nil but collectionService.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
		Id   uuid.UUID
	}{
		Ctx:  ctx,
		User: user,
		Id:   id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, user, id)
}

func (mock *collectionServiceMock) DeleteCalls() []struct {
	Ctx  context.Context
	User *domain.User
	Id   uuid.UUID
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
		Id   uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
