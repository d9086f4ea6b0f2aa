// Package item implements saved-item CRUD, search and metadata extraction.
package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/provider"
)

// itemRepo defines the item repository interface needed by item service.
type itemRepo interface {
	Create(ctx context.Context, it *domain.SavedItem) (*domain.SavedItem, error)
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.SavedItem, error)
	List(ctx context.Context, userID uuid.UUID, f domain.ItemFilter) ([]domain.SavedItem, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, u domain.ItemUpdate) (*domain.SavedItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	Search(ctx context.Context, userID uuid.UUID, q domain.SearchQuery) ([]domain.SavedItem, error)
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// collectionRepo defines the collection lookups needed by item service.
type collectionRepo interface {
	CountOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
}

// metadataFetcher inspects a URL. It never fails.
type metadataFetcher interface {
	Fetch(ctx context.Context, rawURL string) provider.PageMetadata
}

// entitlements defines the plan checks needed by item service.
type entitlements interface {
	CheckQuota(ctx context.Context, user *domain.User, r domain.Resource) error
	RequireFeature(user *domain.User, f domain.Feature) error
}

// Service implements saved-item operations.
type Service struct {
	log          *slog.Logger
	items        itemRepo
	collections  collectionRepo
	metadata     metadataFetcher
	entitlements entitlements
}

// NewService creates a new item service instance.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	collections collectionRepo,
	metadata metadataFetcher,
	entitlements entitlements,
) *Service {
	return &Service{
		log:          logger.With("service", "item"),
		items:        items,
		collections:  collections,
		metadata:     metadata,
		entitlements: entitlements,
	}
}

// checkCollections verifies that every referenced collection belongs to the user.
func (s *Service) checkCollections(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	owned, err := s.collections.CountOwned(ctx, userID, ids)
	if err != nil {
		return err
	}
	if owned != len(ids) {
		return domain.NewValidationError("collections", "unknown collection")
	}
	return nil
}

// dedupeIDs removes repeated ids, keeping the first occurrence.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
