package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	PreferencesFunc       func(u *domain.User) domain.Preferences
	UpdatePreferencesFunc func(ctx context.Context, u *domain.User, input user.UpdatePreferencesInput) (domain.Preferences, error)

	calls struct {
		Preferences []struct {
			U *domain.User
		}
		UpdatePreferences []struct {
			Ctx   context.Context
			U     *domain.User
			Input user.UpdatePreferencesInput
		}
	}
	lockPreferences       sync.RWMutex
	lockUpdatePreferences sync.RWMutex
}

func (mock *userServiceMock) Preferences(u *domain.User) domain.Preferences {
	if mock.PreferencesFunc == nil {
		panic("userServiceMock.PreferencesFunc: method is nil but userService.Preferences was just called")
	}
	callInfo := struct {
		U *domain.User
	}{
		U: u,
	}
	mock.lockPreferences.Lock()
	mock.calls.Preferences = append(mock.calls.Preferences, callInfo)
	mock.lockPreferences.Unlock()
	return mock.PreferencesFunc(u)
}

func (mock *userServiceMock) PreferencesCalls() []struct {
	U *domain.User
} {
	var calls []struct {
		U *domain.User
	}
	mock.lockPreferences.RLock()
	calls = mock.calls.Preferences
	mock.lockPreferences.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdatePreferences(ctx context.Context, u *domain.User, input user.UpdatePreferencesInput) (domain.Preferences, error) {
	if mock.UpdatePreferencesFunc == nil {
		panic("userServiceMock.UpdatePreferencesFunc: method is nil but userService.UpdatePreferences was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		U     *domain.User
		Input user.UpdatePreferencesInput
	}{
		Ctx:   ctx,
		U:     u,
		Input: input,
	}
	mock.lockUpdatePreferences.Lock()
	mock.calls.UpdatePreferences = append(mock.calls.UpdatePreferences, callInfo)
	mock.lockUpdatePreferences.Unlock()
	return mock.UpdatePreferencesFunc(ctx, u, input)
}

func (mock *userServiceMock) UpdatePreferencesCalls() []struct {
	Ctx   context.Context
	U     *domain.User
	Input user.UpdatePreferencesInput
} {
	var calls []struct {
		Ctx   context.Context
		U     *domain.User
		Input user.UpdatePreferencesInput
	}
	mock.lockUpdatePreferences.RLock()
	calls = mock.calls.UpdatePreferences
	mock.lockUpdatePreferences.RUnlock()
	return calls
}
