package item

import (
	"context"
	"sync"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

var _ entitlements = &entitlementsMock{}

type entitlementsMock struct {
	CheckQuotaFunc     func(ctx context.Context, user *domain.User, r domain.Resource) error
	RequireFeatureFunc func(user *domain.User, f domain.Feature) error

	calls struct {
		CheckQuota []struct {
			Ctx  context.Context
			User *domain.User
			R    domain.Resource
		}
		RequireFeature []struct {
			User *domain.User
			F    domain.Feature
		}
	}
	lockCheckQuota     sync.RWMutex
	lockRequireFeature sync.RWMutex
}

func (mock *entitlementsMock) CheckQuota(ctx context.Context, user *domain.User, r domain.Resource) error {
	if mock.CheckQuotaFunc == nil {
		panic("entitlementsMock.CheckQuotaFunc: method is nil but entitlements.CheckQuota was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
		R    domain.Resource
	}{
		Ctx:  ctx,
		User: user,
		R:    r,
	}
	mock.lockCheckQuota.Lock()
	mock.calls.CheckQuota = append(mock.calls.CheckQuota, callInfo)
	mock.lockCheckQuota.Unlock()
	return mock.CheckQuotaFunc(ctx, user, r)
}

func (mock *entitlementsMock) CheckQuotaCalls() []struct {
	Ctx  context.Context
	User *domain.User
	R    domain.Resource
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
		R    domain.Resource
	}
	mock.lockCheckQuota.RLock()
	calls = mock.calls.CheckQuota
	mock.lockCheckQuota.RUnlock()
	return calls
}

func (mock *entitlementsMock) RequireFeature(user *domain.User, f domain.Feature) error {
	if mock.RequireFeatureFunc == nil {
		panic("entitlementsMock.RequireFeatureFunc: method is nil but entitlements.RequireFeature was just called")
	}
	callInfo := struct {
		User *domain.User
		F    domain.Feature
	}{
		User: user,
		F:    f,
	}
	mock.lockRequireFeature.Lock()
	mock.calls.RequireFeature = append(mock.calls.RequireFeature, callInfo)
	mock.lockRequireFeature.Unlock()
	return mock.RequireFeatureFunc(user, f)
}

func (mock *entitlementsMock) RequireFeatureCalls() []struct {
	User *domain.User
	F    domain.Feature
} {
	var calls []struct {
		User *domain.User
		F    domain.Feature
	}
	mock.lockRequireFeature.RLock()
	calls = mock.calls.RequireFeature
	mock.lockRequireFeature.RUnlock()
	return calls
}
