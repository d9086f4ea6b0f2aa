package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// platformCollections maps a platform to its default auto-collection name.
var platformCollections = map[string]string{
	"YouTube":   "Videos",
	"TikTok":    "Videos",
	"Instagram": "Social",
	"X":         "Social",
	"LinkedIn":  "Professional",
	"Medium":    "Articles",
	"Substack":  "Articles",
	"Reddit":    "Discussions",
	"GitHub":    "Code",
	"Web":       domain.DefaultCollectionName,
}

// ErrActionItemNotFound is returned when an action item index is out of range.
var ErrActionItemNotFound = fmt.Errorf("action item: %w", domain.ErrNotFound)

// CollectionSuggestion names a collection an item fits in. CollectionID is
// set when the user already owns it.
type CollectionSuggestion struct {
	Name         string
	CollectionID *uuid.UUID
	IsExisting   bool
}

func (s *Service) loadItem(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
	if err := s.entitlements.RequireFeature(user, domain.FeatureAIFeatures); err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, user.ID, itemID)
}

// Summarize generates and stores bullet summaries for an item. When nothing
// was generated the item is returned unchanged.
func (s *Service) Summarize(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
	it, err := s.loadItem(ctx, user, itemID)
	if err != nil {
		return nil, fmt.Errorf("insight.Summarize: %w", err)
	}

	bullets := s.gen.Summarize(ctx, it.Title, it.URL, it.Platform)
	if len(bullets) == 0 {
		return it, nil
	}

	updated, err := s.items.SetAISummary(ctx, user.ID, itemID, bullets)
	if err != nil {
		return nil, fmt.Errorf("insight.Summarize: %w", err)
	}
	return updated, nil
}

// ExtractIdeas generates and stores key ideas for an item.
func (s *Service) ExtractIdeas(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
	it, err := s.loadItem(ctx, user, itemID)
	if err != nil {
		return nil, fmt.Errorf("insight.ExtractIdeas: %w", err)
	}

	ideas := s.gen.ExtractIdeas(ctx, it.Title, it.URL, it.Platform, it.Notes)
	if len(ideas) == 0 {
		return it, nil
	}

	updated, err := s.items.SetExtractedIdeas(ctx, user.ID, itemID, ideas)
	if err != nil {
		return nil, fmt.Errorf("insight.ExtractIdeas: %w", err)
	}
	return updated, nil
}

// GenerateActionItems generates and stores action items for an item.
func (s *Service) GenerateActionItems(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
	it, err := s.loadItem(ctx, user, itemID)
	if err != nil {
		return nil, fmt.Errorf("insight.GenerateActionItems: %w", err)
	}

	actions := s.gen.GenerateActionItems(ctx, it.Title, it.URL, it.Platform, it.Notes)
	if len(actions) == 0 {
		return it, nil
	}

	updated, err := s.items.SetActionItems(ctx, user.ID, itemID, actions)
	if err != nil {
		return nil, fmt.Errorf("insight.GenerateActionItems: %w", err)
	}
	return updated, nil
}

// SmartTags suggests tags for an item against the user's existing tags.
// Suggestions are not stored.
func (s *Service) SmartTags(ctx context.Context, user *domain.User, itemID uuid.UUID) ([]domain.SmartTag, error) {
	it, err := s.loadItem(ctx, user, itemID)
	if err != nil {
		return nil, fmt.Errorf("insight.SmartTags: %w", err)
	}

	existing, err := s.items.ListTags(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("insight.SmartTags: %w", err)
	}

	return s.gen.SuggestSmartTags(ctx, it.Title, it.Platform, existing), nil
}

// ApplySmartTag adds tag to the item unless it already carries it in any case.
func (s *Service) ApplySmartTag(ctx context.Context, user *domain.User, itemID uuid.UUID, tag string) (*domain.SavedItem, error) {
	tag = domain.NormalizeName(tag)
	if tag == "" {
		return nil, domain.NewValidationError("tag_name", "required")
	}

	it, err := s.items.GetByID(ctx, user.ID, itemID)
	if err != nil {
		return nil, fmt.Errorf("insight.ApplySmartTag: %w", err)
	}
	if domain.ContainsFold(it.Tags, tag) {
		return it, nil
	}

	tags := append(append(make([]string, 0, len(it.Tags)+1), it.Tags...), tag)
	updated, err := s.items.Update(ctx, user.ID, itemID, domain.ItemUpdate{Tags: tags})
	if err != nil {
		return nil, fmt.Errorf("insight.ApplySmartTag: %w", err)
	}
	return updated, nil
}

// ToggleActionItem flips the completed flag of the action item at idx.
func (s *Service) ToggleActionItem(ctx context.Context, user *domain.User, itemID uuid.UUID, idx int) (*domain.SavedItem, error) {
	it, err := s.items.GetByID(ctx, user.ID, itemID)
	if err != nil {
		return nil, fmt.Errorf("insight.ToggleActionItem: %w", err)
	}
	if idx < 0 || idx >= len(it.ActionItems) {
		return nil, fmt.Errorf("insight.ToggleActionItem: index %d: %w", idx, ErrActionItemNotFound)
	}

	actions := make([]domain.ActionItem, len(it.ActionItems))
	copy(actions, it.ActionItems)
	actions[idx].Completed = !actions[idx].Completed

	updated, err := s.items.SetActionItems(ctx, user.ID, itemID, actions)
	if err != nil {
		return nil, fmt.Errorf("insight.ToggleActionItem: %w", err)
	}
	return updated, nil
}

// SuggestCollection picks a collection for an item and records the name on
// it. Without a usable suggestion it falls back to the default collection.
func (s *Service) SuggestCollection(ctx context.Context, user *domain.User, itemID uuid.UUID) (*CollectionSuggestion, error) {
	it, err := s.loadItem(ctx, user, itemID)
	if err != nil {
		return nil, fmt.Errorf("insight.SuggestCollection: %w", err)
	}

	suggestion := s.suggestAutoCollection(ctx, it.Title, it.Platform, user.ID)
	if suggestion == nil {
		suggestion = &CollectionSuggestion{Name: domain.DefaultCollectionName}
	}

	if _, err := s.items.SetSuggestedCollection(ctx, user.ID, itemID, suggestion.Name); err != nil {
		return nil, fmt.Errorf("insight.SuggestCollection: %w", err)
	}
	return suggestion, nil
}

// suggestAutoCollection returns nil on any failure.
func (s *Service) suggestAutoCollection(ctx context.Context, title, platform string, userID uuid.UUID) *CollectionSuggestion {
	name, ok := platformCollections[platform]
	if !ok {
		name = domain.DefaultCollectionName
	}

	existing, err := s.findCollection(ctx, userID, name)
	if err != nil {
		return nil
	}
	if existing != nil {
		return existing
	}

	generated := s.gen.SuggestCollectionName(ctx, title, platform)
	if generated == "" {
		return nil
	}

	existing, err = s.findCollection(ctx, userID, generated)
	if err != nil {
		return nil
	}
	if existing != nil {
		return existing
	}
	return &CollectionSuggestion{Name: generated}
}

// findCollection returns (nil, nil) when the user has no collection by name.
func (s *Service) findCollection(ctx context.Context, userID uuid.UUID, name string) (*CollectionSuggestion, error) {
	c, err := s.collections.GetByName(ctx, userID, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.WarnContext(ctx, "collection lookup failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	id := c.ID
	return &CollectionSuggestion{Name: c.Name, CollectionID: &id, IsExisting: true}, nil
}
