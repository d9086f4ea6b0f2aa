// Package insight derives summaries, ideas, tags and reminders from saved
// items using an LLM, and builds the library overview views.
package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

const (
	topTagsLimit   = 10
	resurfaceAge   = 30 * 24 * time.Hour
	resurfaceLimit = 5
	unreviewedAge  = 7 * 24 * time.Hour
	maxReminders   = 10
	digestWindow   = 7 * 24 * time.Hour
)

// itemRepo defines the item operations needed by insight service.
type itemRepo interface {
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.SavedItem, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SavedItem, error)
	ListCreatedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]domain.SavedItem, error)
	SampleCreatedBefore(ctx context.Context, userID uuid.UUID, before time.Time, limit int) ([]domain.SavedItem, error)
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, error)
	Stats(ctx context.Context, userID uuid.UUID, weekStart time.Time, topTags int) (domain.ItemStats, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, u domain.ItemUpdate) (*domain.SavedItem, error)
	SetAISummary(ctx context.Context, userID, itemID uuid.UUID, summary []string) (*domain.SavedItem, error)
	SetExtractedIdeas(ctx context.Context, userID, itemID uuid.UUID, ideas []domain.ExtractedIdea) (*domain.SavedItem, error)
	SetActionItems(ctx context.Context, userID, itemID uuid.UUID, actions []domain.ActionItem) (*domain.SavedItem, error)
	SetSuggestedCollection(ctx context.Context, userID, itemID uuid.UUID, name string) (*domain.SavedItem, error)
}

// collectionRepo defines the collection operations needed by insight service.
type collectionRepo interface {
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Collection, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// entitlements defines the plan checks needed by insight service.
type entitlements interface {
	RequireFeature(user *domain.User, f domain.Feature) error
}

// Service implements the insight operations.
type Service struct {
	log          *slog.Logger
	items        itemRepo
	collections  collectionRepo
	entitlements entitlements
	gen          *Generator
	now          func() time.Time
}

// NewService creates a new insight service. A nil llm disables generation;
// the AI operations then leave items untouched.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	collections collectionRepo,
	entitlements entitlements,
	llm completer,
) *Service {
	return &Service{
		log:          logger.With("service", "insight"),
		items:        items,
		collections:  collections,
		entitlements: entitlements,
		gen:          NewGenerator(llm, logger),
		now:          time.Now,
	}
}
