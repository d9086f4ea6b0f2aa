package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/service/insight"
)

var _ insightService = &insightServiceMock{}

type insightServiceMock struct {
	SummarizeFunc           func(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error)
	ExtractIdeasFunc        func(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error)
	GenerateActionItemsFunc func(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error)
	SmartTagsFunc           func(ctx context.Context, user *domain.User, itemID uuid.UUID) ([]domain.SmartTag, error)
	ApplySmartTagFunc       func(ctx context.Context, user *domain.User, itemID uuid.UUID, tag string) (*domain.SavedItem, error)
	ToggleActionItemFunc    func(ctx context.Context, user *domain.User, itemID uuid.UUID, idx int) (*domain.SavedItem, error)
	SuggestCollectionFunc   func(ctx context.Context, user *domain.User, itemID uuid.UUID) (*insight.CollectionSuggestion, error)
	OverviewFunc            func(ctx context.Context, user *domain.User) (*insight.Overview, error)
	ResurfacedFunc          func(ctx context.Context, user *domain.User) ([]domain.SavedItem, error)
	RemindersFunc           func(ctx context.Context, user *domain.User) ([]insight.Reminder, error)

	calls struct {
		Summarize []struct {
			Ctx    context.Context
			User   *domain.User
			ItemID uuid.UUID
		}
		ExtractIdeas []struct {
			Ctx    context.Context
			User   *domain.User
			ItemID uuid.UUID
		}
		GenerateActionItems []struct {
			Ctx    context.Context
			User   *domain.User
			ItemID uuid.UUID
		}
		SmartTags []struct {
			Ctx    context.Context
			User   *domain.User
			ItemID uuid.UUID
		}
		ApplySmartTag []struct {
			Ctx    context.Context
			User   *domain.User
			ItemID uuid.UUID
			Tag    string
		}
		ToggleActionItem []struct {
			Ctx    context.Context
			User   *domain.User
			ItemID uuid.UUID
			Idx    int
		}
		SuggestCollection []struct {
			Ctx    context.Context
			User   *domain.User
			ItemID uuid.UUID
		}
		Overview []struct {
			Ctx  context.Context
			User *domain.User
		}
		Resurfaced []struct {
			Ctx  context.Context
			User *domain.User
		}
		Reminders []struct {
			Ctx  context.Context
			User *domain.User
		}
	}
	lockSummarize           sync.RWMutex
	lockExtractIdeas        sync.RWMutex
	lockGenerateActionItems sync.RWMutex
	lockSmartTags           sync.RWMutex
	lockApplySmartTag       sync.RWMutex
	lockToggleActionItem    sync.RWMutex
	lockSuggestCollection   sync.RWMutex
	lockOverview            sync.RWMutex
	lockResurfaced          sync.RWMutex
	lockReminders           sync.RWMutex
}

func (mock *insightServiceMock) Summarize(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
	if mock.SummarizeFunc == nil {
		panic("insightServiceMock.SummarizeFunc: method is nil but insightService.Summarize was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		User:   user,
		ItemID: itemID,
	}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, user, itemID)
}

func (mock *insightServiceMock) SummarizeCalls() []struct {
	Ctx    context.Context
	User   *domain.User
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}
	mock.lockSummarize.RLock()
	calls = mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}

func (mock *insightServiceMock) ExtractIdeas(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
	if mock.ExtractIdeasFunc == nil {
		panic("insightServiceMock.ExtractIdeasFunc: method is nil but insightService.ExtractIdeas was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		User:   user,
		ItemID: itemID,
	}
	mock.lockExtractIdeas.Lock()
	mock.calls.ExtractIdeas = append(mock.calls.ExtractIdeas, callInfo)
	mock.lockExtractIdeas.Unlock()
	return mock.ExtractIdeasFunc(ctx, user, itemID)
}

func (mock *insightServiceMock) ExtractIdeasCalls() []struct {
	Ctx    context.Context
	User   *domain.User
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}
	mock.lockExtractIdeas.RLock()
	calls = mock.calls.ExtractIdeas
	mock.lockExtractIdeas.RUnlock()
	return calls
}

func (mock *insightServiceMock) GenerateActionItems(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
	if mock.GenerateActionItemsFunc == nil {
		panic("insightServiceMock.GenerateActionItemsFunc: method is nil but insightService.GenerateActionItems was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		User:   user,
		ItemID: itemID,
	}
	mock.lockGenerateActionItems.Lock()
	mock.calls.GenerateActionItems = append(mock.calls.GenerateActionItems, callInfo)
	mock.lockGenerateActionItems.Unlock()
	return mock.GenerateActionItemsFunc(ctx, user, itemID)
}

func (mock *insightServiceMock) GenerateActionItemsCalls() []struct {
	Ctx    context.Context
	User   *domain.User
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}
	mock.lockGenerateActionItems.RLock()
	calls = mock.calls.GenerateActionItems
	mock.lockGenerateActionItems.RUnlock()
	return calls
}

func (mock *insightServiceMock) SmartTags(ctx context.Context, user *domain.User, itemID uuid.UUID) ([]domain.SmartTag, error) {
	if mock.SmartTagsFunc == nil {
		panic("insightServiceMock.SmartTagsFunc: method is nil but insightService.SmartTags was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		User:   user,
		ItemID: itemID,
	}
	mock.lockSmartTags.Lock()
	mock.calls.SmartTags = append(mock.calls.SmartTags, callInfo)
	mock.lockSmartTags.Unlock()
	return mock.SmartTagsFunc(ctx, user, itemID)
}

func (mock *insightServiceMock) SmartTagsCalls() []struct {
	Ctx    context.Context
	User   *domain.User
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}
	mock.lockSmartTags.RLock()
	calls = mock.calls.SmartTags
	mock.lockSmartTags.RUnlock()
	return calls
}

func (mock *insightServiceMock) ApplySmartTag(ctx context.Context, user *domain.User, itemID uuid.UUID, tag string) (*domain.SavedItem, error) {
	if mock.ApplySmartTagFunc == nil {
		panic("insightServiceMock.ApplySmartTagFunc: method is nil but insightService.ApplySmartTag was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
		Tag    string
	}{
		Ctx:    ctx,
		User:   user,
		ItemID: itemID,
		Tag:    tag,
	}
	mock.lockApplySmartTag.Lock()
	mock.calls.ApplySmartTag = append(mock.calls.ApplySmartTag, callInfo)
	mock.lockApplySmartTag.Unlock()
	return mock.ApplySmartTagFunc(ctx, user, itemID, tag)
}

func (mock *insightServiceMock) ApplySmartTagCalls() []struct {
	Ctx    context.Context
	User   *domain.User
	ItemID uuid.UUID
	Tag    string
} {
	var calls []struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
		Tag    string
	}
	mock.lockApplySmartTag.RLock()
	calls = mock.calls.ApplySmartTag
	mock.lockApplySmartTag.RUnlock()
	return calls
}

func (mock *insightServiceMock) ToggleActionItem(ctx context.Context, user *domain.User, itemID uuid.UUID, idx int) (*domain.SavedItem, error) {
	if mock.ToggleActionItemFunc == nil {
		panic("insightServiceMock.ToggleActionItemFunc: method is nil but insightService.ToggleActionItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
		Idx    int
	}{
		Ctx:    ctx,
		User:   user,
		ItemID: itemID,
		Idx:    idx,
	}
	mock.lockToggleActionItem.Lock()
	mock.calls.ToggleActionItem = append(mock.calls.ToggleActionItem, callInfo)
	mock.lockToggleActionItem.Unlock()
	return mock.ToggleActionItemFunc(ctx, user, itemID, idx)
}

func (mock *insightServiceMock) ToggleActionItemCalls() []struct {
	Ctx    context.Context
	User   *domain.User
	ItemID uuid.UUID
	Idx    int
} {
	var calls []struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
		Idx    int
	}
	mock.lockToggleActionItem.RLock()
	calls = mock.calls.ToggleActionItem
	mock.lockToggleActionItem.RUnlock()
	return calls
}

func (mock *insightServiceMock) SuggestCollection(ctx context.Context, user *domain.User, itemID uuid.UUID) (*insight.CollectionSuggestion, error) {
	if mock.SuggestCollectionFunc == nil {
		panic("insightServiceMock.SuggestCollectionFunc: method is nil but insightService.SuggestCollection was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		User:   user,
		ItemID: itemID,
	}
	mock.lockSuggestCollection.Lock()
	mock.calls.SuggestCollection = append(mock.calls.SuggestCollection, callInfo)
	mock.lockSuggestCollection.Unlock()
	return mock.SuggestCollectionFunc(ctx, user, itemID)
}

func (mock *insightServiceMock) SuggestCollectionCalls() []struct {
	Ctx    context.Context
	User   *domain.User
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		User   *domain.User
		ItemID uuid.UUID
	}
	mock.lockSuggestCollection.RLock()
	calls = mock.calls.SuggestCollection
	mock.lockSuggestCollection.RUnlock()
	return calls
}

func (mock *insightServiceMock) Overview(ctx context.Context, user *domain.User) (*insight.Overview, error) {
	if mock.OverviewFunc == nil {
		panic("insightServiceMock.OverviewFunc: method is nil but insightService.Overview was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockOverview.Lock()
	mock.calls.Overview = append(mock.calls.Overview, callInfo)
	mock.lockOverview.Unlock()
	return mock.OverviewFunc(ctx, user)
}

func (mock *insightServiceMock) OverviewCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
	}
	mock.lockOverview.RLock()
	calls = mock.calls.Overview
	mock.lockOverview.RUnlock()
	return calls
}

func (mock *insightServiceMock) Resurfaced(ctx context.Context, user *domain.User) ([]domain.SavedItem, error) {
	if mock.ResurfacedFunc == nil {
		panic("insightServiceMock.ResurfacedFunc: method is nil but insightService.Resurfaced was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockResurfaced.Lock()
	mock.calls.Resurfaced = append(mock.calls.Resurfaced, callInfo)
	mock.lockResurfaced.Unlock()
	return mock.ResurfacedFunc(ctx, user)
}

func (mock *insightServiceMock) ResurfacedCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
	}
	mock.lockResurfaced.RLock()
	calls = mock.calls.Resurfaced
	mock.lockResurfaced.RUnlock()
	return calls
}

func (mock *insightServiceMock) Reminders(ctx context.Context, user *domain.User) ([]insight.Reminder, error) {
	if mock.RemindersFunc == nil {
		panic("insightServiceMock.RemindersFunc: method is nil but insightService.Reminders was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockReminders.Lock()
	mock.calls.Reminders = append(mock.calls.Reminders, callInfo)
	mock.lockReminders.Unlock()
	return mock.RemindersFunc(ctx, user)
}

func (mock *insightServiceMock) RemindersCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
	}
	mock.lockReminders.RLock()
	calls = mock.calls.Reminders
	mock.lockReminders.RUnlock()
	return calls
}
