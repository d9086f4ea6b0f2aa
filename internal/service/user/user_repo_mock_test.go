package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/stash-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	UpdatePreferencesFunc func(ctx context.Context, id uuid.UUID, p domain.Preferences) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		UpdatePreferences []struct {
			Ctx context.Context
			Id  uuid.UUID
			P   domain.Preferences
		}
	}
	lockGetByID           sync.RWMutex
	lockGetByEmail        sync.RWMutex
	lockUpdatePreferences sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePreferences(ctx context.Context, id uuid.UUID, p domain.Preferences) (*domain.User, error) {
	if mock.UpdatePreferencesFunc == nil {
		panic("userRepoMock.UpdatePreferencesFunc: method is nil but userRepo.UpdatePreferences was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.Preferences
	}{
		Ctx: ctx,
		Id:  id,
		P:   p,
	}
	mock.lockUpdatePreferences.Lock()
	mock.calls.UpdatePreferences = append(mock.calls.UpdatePreferences, callInfo)
	mock.lockUpdatePreferences.Unlock()
	return mock.UpdatePreferencesFunc(ctx, id, p)
}

func (mock *userRepoMock) UpdatePreferencesCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	P   domain.Preferences
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.Preferences
	}
	mock.lockUpdatePreferences.RLock()
	calls = mock.calls.UpdatePreferences
	mock.lockUpdatePreferences.RUnlock()
	return calls
}
