// Package collection implements collection CRUD with referential cleanup of
// item memberships.
package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// collectionRepo defines the collection repository interface needed by collection service.
type collectionRepo interface {
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
	Rename(ctx context.Context, userID, id uuid.UUID, name string) (*domain.Collection, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// itemRepo defines the item operations needed by collection service.
type itemRepo interface {
	RemoveCollection(ctx context.Context, userID, collectionID uuid.UUID) (int64, error)
}

// txManager defines the transaction manager interface needed by collection service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// entitlements defines the plan checks needed by collection service.
type entitlements interface {
	CheckQuota(ctx context.Context, user *domain.User, r domain.Resource) error
}

// Service implements collection operations.
type Service struct {
	log          *slog.Logger
	collections  collectionRepo
	items        itemRepo
	tx           txManager
	entitlements entitlements
}

// NewService creates a new collection service instance.
func NewService(
	logger *slog.Logger,
	collections collectionRepo,
	items itemRepo,
	tx txManager,
	entitlements entitlements,
) *Service {
	return &Service{
		log:          logger.With("service", "collection"),
		collections:  collections,
		items:        items,
		tx:           tx,
		entitlements: entitlements,
	}
}

// Create adds a collection. Free plans are capped by count.
func (s *Service) Create(ctx context.Context, user *domain.User, name string) (*domain.Collection, error) {
	name = domain.NormalizeName(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	if err := s.entitlements.CheckQuota(ctx, user, domain.ResourceCollections); err != nil {
		return nil, err
	}

	c, err := s.collections.Create(ctx, &domain.Collection{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("collection.Create: %w", err)
	}

	s.log.InfoContext(ctx, "collection created",
		slog.String("user_id", user.ID.String()),
		slog.String("collection_id", c.ID.String()))

	return c, nil
}

// List returns the user's collections with item counts.
func (s *Service) List(ctx context.Context, user *domain.User) ([]domain.Collection, error) {
	list, err := s.collections.List(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("collection.List: %w", err)
	}
	return list, nil
}

// Rename changes a collection's name and returns it with a fresh item count.
func (s *Service) Rename(ctx context.Context, user *domain.User, id uuid.UUID, name string) (*domain.Collection, error) {
	name = domain.NormalizeName(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	c, err := s.collections.Rename(ctx, user.ID, id, name)
	if err != nil {
		return nil, fmt.Errorf("collection.Rename: %w", err)
	}
	return c, nil
}

// Delete removes a collection and pulls its id out of every item that
// referenced it, atomically.
func (s *Service) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	var detached int64

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.collections.Delete(txCtx, user.ID, id); err != nil {
			return err
		}
		n, err := s.items.RemoveCollection(txCtx, user.ID, id)
		if err != nil {
			return err
		}
		detached = n
		return nil
	})
	if err != nil {
		return fmt.Errorf("collection.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "collection deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("collection_id", id.String()),
		slog.Int64("items_detached", detached))

	return nil
}

func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return domain.NewValidationError("name", "required")
	case utf8.RuneCountInString(name) > domain.MaxCollectionNameLen:
		return domain.NewValidationError("name", "too long")
	}
	return nil
}
