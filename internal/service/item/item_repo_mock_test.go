package item

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc   func(ctx context.Context, it *domain.SavedItem) (*domain.SavedItem, error)
	GetByIDFunc  func(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*domain.SavedItem, error)
	ListFunc     func(ctx context.Context, userID uuid.UUID, f domain.ItemFilter) ([]domain.SavedItem, error)
	UpdateFunc   func(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, u domain.ItemUpdate) (*domain.SavedItem, error)
	DeleteFunc   func(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error
	SearchFunc   func(ctx context.Context, userID uuid.UUID, q domain.SearchQuery) ([]domain.SavedItem, error)
	ListTagsFunc func(ctx context.Context, userID uuid.UUID) ([]string, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			It  *domain.SavedItem
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.ItemFilter
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
			U      domain.ItemUpdate
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		Search []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Q      domain.SearchQuery
		}
		ListTags []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockList     sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockSearch   sync.RWMutex
	lockListTags sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, it *domain.SavedItem) (*domain.SavedItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  *domain.SavedItem
	}{
		Ctx: ctx,
		It:  it,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx context.Context
	It  *domain.SavedItem
} {
	var calls []struct {
		Ctx context.Context
		It  *domain.SavedItem
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByID(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*domain.SavedItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ItemID: itemID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, itemID)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.ItemFilter) ([]domain.SavedItem, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.ItemFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		F:      f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *itemRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.ItemFilter
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.ItemFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *itemRepoMock) Update(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, u domain.ItemUpdate) (*domain.SavedItem, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
		U      domain.ItemUpdate
	}{
		Ctx:    ctx,
		UserID: userID,
		ItemID: itemID,
		U:      u,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, itemID, u)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
	U      domain.ItemUpdate
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
		U      domain.ItemUpdate
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ItemID: itemID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, itemID)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *itemRepoMock) Search(ctx context.Context, userID uuid.UUID, q domain.SearchQuery) ([]domain.SavedItem, error) {
	if mock.SearchFunc == nil {
		panic("itemRepoMock.SearchFunc: method is nil but itemRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Q      domain.SearchQuery
	}{
		Ctx:    ctx,
		UserID: userID,
		Q:      q,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, userID, q)
}

func (mock *itemRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Q      domain.SearchQuery
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Q      domain.SearchQuery
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
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
