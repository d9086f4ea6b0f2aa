package item

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

const (
	minQueryLen      = 2
	maxSearchResults = 100
)

// Search matches q case-insensitively against title, notes, tags, platform
// and url. Queries shorter than two characters return no results.
func (s *Service) Search(ctx context.Context, user *domain.User, q string) ([]domain.SavedItem, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < minQueryLen {
		return []domain.SavedItem{}, nil
	}

	items, err := s.items.Search(ctx, user.ID, domain.SearchQuery{
		Text:     q,
		InTitles: true,
		InNotes:  true,
		InTags:   true,
		Limit:    maxSearchResults,
	})
	if err != nil {
		return nil, fmt.Errorf("item.Search: %w", err)
	}
	return items, nil
}

// AdvancedSearch is the pro-only search with field toggles and filters.
func (s *Service) AdvancedSearch(ctx context.Context, user *domain.User, input AdvancedSearchInput) ([]domain.SavedItem, error) {
	if err := s.entitlements.RequireFeature(user, domain.FeatureAdvancedSearch); err != nil {
		return nil, err
	}

	q := strings.TrimSpace(input.Query)
	if utf8.RuneCountInString(q) < minQueryLen {
		return []domain.SavedItem{}, nil
	}

	items, err := s.items.Search(ctx, user.ID, domain.SearchQuery{
		Text:         q,
		InTitles:     input.InTitles,
		InNotes:      input.InNotes,
		InTags:       input.InTags,
		Platform:     input.Platform,
		CollectionID: input.CollectionID,
		Limit:        maxSearchResults,
	})
	if err != nil {
		return nil, fmt.Errorf("item.AdvancedSearch: %w", err)
	}
	return items, nil
}
