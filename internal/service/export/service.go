// Package export builds the full data dump of a user's library.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// itemRepo defines the item operations needed by export service.
type itemRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.SavedItem, error)
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// collectionRepo defines the collection operations needed by export service.
type collectionRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
}

// entitlements defines the plan checks needed by export service.
type entitlements interface {
	RequireFeature(user *domain.User, f domain.Feature) error
}

// snapshotter runs reads against one consistent view of the database.
type snapshotter interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Vault is a complete snapshot of one user's data.
type Vault struct {
	ExportedAt  time.Time
	User        *domain.User
	Items       []domain.SavedItem
	Collections []domain.Collection
	Tags        []string
}

// Service implements the vault export.
type Service struct {
	log          *slog.Logger
	items        itemRepo
	collections  collectionRepo
	entitlements entitlements
	tx           snapshotter
	now          func() time.Time
}

// NewService creates a new export service instance.
func NewService(logger *slog.Logger, items itemRepo, collections collectionRepo, tx snapshotter, entitlements entitlements) *Service {
	return &Service{
		log:          logger.With("service", "export"),
		items:        items,
		collections:  collections,
		entitlements: entitlements,
		tx:           tx,
		now:          time.Now,
	}
}

// Vault exports every item, collection and tag of the user, oldest items first.
func (s *Service) Vault(ctx context.Context, user *domain.User) (*Vault, error) {
	if err := s.entitlements.RequireFeature(user, domain.FeatureVaultExport); err != nil {
		return nil, err
	}

	var (
		items       []domain.SavedItem
		collections []domain.Collection
		tags        []string
	)
	err := s.tx.RunInSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		if items, err = s.items.ListAll(txCtx, user.ID); err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		if collections, err = s.collections.List(txCtx, user.ID); err != nil {
			return fmt.Errorf("list collections: %w", err)
		}
		if tags, err = s.items.ListTags(txCtx, user.ID); err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export.Vault: %w", err)
	}

	s.log.InfoContext(ctx, "vault exported",
		slog.String("user_id", user.ID.String()),
		slog.Int("items", len(items)),
		slog.Int("collections", len(collections)),
	)

	return &Vault{
		ExportedAt:  s.now().UTC(),
		User:        user,
		Items:       items,
		Collections: collections,
		Tags:        tags,
	}, nil
}
