package insight

import (
	"sync"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

var _ entitlements = &entitlementsMock{}

type entitlementsMock struct {
	RequireFeatureFunc func(user *domain.User, f domain.Feature) error

	calls struct {
		RequireFeature []struct {
			User *domain.User
			F    domain.Feature
		}
	}
	lockRequireFeature sync.RWMutex
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
