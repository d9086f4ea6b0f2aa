package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/stash-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
	}
	lockRegister sync.RWMutex
	lockLogin    sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}
