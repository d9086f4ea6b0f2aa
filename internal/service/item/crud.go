package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// Get returns one of the user's items.
func (s *Service) Get(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
	it, err := s.items.GetByID(ctx, user.ID, itemID)
	if err != nil {
		return nil, fmt.Errorf("item.Get: %w", err)
	}
	return it, nil
}

// List returns the user's items matching the filters, capped at
// domain.MaxListItems.
func (s *Service) List(ctx context.Context, user *domain.User, input ListInput) ([]domain.SavedItem, error) {
	items, err := s.items.List(ctx, user.ID, domain.ItemFilter{
		Platform:     input.Platform,
		CollectionID: input.CollectionID,
		Tag:          input.Tag,
		Newest:       input.Newest(),
		Limit:        domain.MaxListItems,
	})
	if err != nil {
		return nil, fmt.Errorf("item.List: %w", err)
	}
	return items, nil
}

// Update applies a partial update to one of the user's items.
func (s *Service) Update(ctx context.Context, user *domain.User, itemID uuid.UUID, input UpdateInput) (*domain.SavedItem, error) {
	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		input.Title = &t
	}
	if input.Tags != nil {
		input.Tags = domain.NormalizeTags(input.Tags)
	}
	if input.Collections != nil {
		input.Collections = dedupeIDs(input.Collections)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkCollections(ctx, user.ID, input.Collections); err != nil {
		return nil, fmt.Errorf("item.Update: %w", err)
	}

	it, err := s.items.Update(ctx, user.ID, itemID, domain.ItemUpdate{
		Title:       input.Title,
		Notes:       input.Notes,
		Tags:        input.Tags,
		Collections: input.Collections,
	})
	if err != nil {
		return nil, fmt.Errorf("item.Update: %w", err)
	}
	return it, nil
}

// Delete removes one of the user's items.
func (s *Service) Delete(ctx context.Context, user *domain.User, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, user.ID, itemID); err != nil {
		return fmt.Errorf("item.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("item_id", itemID.String()))
	return nil
}

// ListTags returns the user's distinct tags, sorted.
func (s *Service) ListTags(ctx context.Context, user *domain.User) ([]string, error) {
	tags, err := s.items.ListTags(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("item.ListTags: %w", err)
	}
	return tags, nil
}
