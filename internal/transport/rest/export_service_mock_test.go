package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/service/export"
)

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	VaultFunc func(ctx context.Context, user *domain.User) (*export.Vault, error)

	calls struct {
		Vault []struct {
			Ctx  context.Context
			User *domain.User
		}
	}
	lockVault sync.RWMutex
}

func (mock *exportServiceMock) Vault(ctx context.Context, user *domain.User) (*export.Vault, error) {
	if mock.VaultFunc == nil {
		panic("exportServiceMock.VaultFunc: method is nil but exportService.Vault was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockVault.Lock()
	mock.calls.Vault = append(mock.calls.Vault, callInfo)
	mock.lockVault.Unlock()
	return mock.VaultFunc(ctx, user)
}

func (mock *exportServiceMock) VaultCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
	}
	mock.lockVault.RLock()
	calls = mock.calls.Vault
	mock.lockVault.RUnlock()
	return calls
}
