package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/provider"
)

// Create saves a URL for the user. The item quota is checked first; page
// metadata is fetched only when the title or platform is missing.
func (s *Service) Create(ctx context.Context, user *domain.User, input CreateInput) (*domain.SavedItem, error) {
	input.URL = strings.TrimSpace(input.URL)
	input.Tags = domain.NormalizeTags(input.Tags)
	input.Collections = dedupeIDs(input.Collections)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.entitlements.CheckQuota(ctx, user, domain.ResourceItems); err != nil {
		return nil, err
	}

	if err := s.checkCollections(ctx, user.ID, input.Collections); err != nil {
		return nil, fmt.Errorf("item.Create: %w", err)
	}

	now := time.Now().UTC()
	it := &domain.SavedItem{
		ID:           uuid.New(),
		UserID:       user.ID,
		URL:          input.URL,
		Title:        trimmed(input.Title),
		ThumbnailURL: input.ThumbnailURL,
		Platform:     trimmed(input.Platform),
		ContentType:  trimmed(input.ContentType),
		Tags:         input.Tags,
		Collections:  input.Collections,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Notes != nil {
		it.Notes = *input.Notes
	}

	if it.Title == "" || it.Platform == "" {
		fillFromMetadata(it, s.metadata.Fetch(ctx, it.URL))
	}
	applyDefaults(it)

	created, err := s.items.Create(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("item.Create: %w", err)
	}

	s.log.InfoContext(ctx, "item saved",
		slog.String("user_id", user.ID.String()),
		slog.String("item_id", created.ID.String()),
		slog.String("platform", created.Platform))

	return created, nil
}

// ExtractMetadata inspects a URL without saving it.
func (s *Service) ExtractMetadata(ctx context.Context, rawURL string) (provider.PageMetadata, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return provider.PageMetadata{}, domain.NewValidationError("url", "required")
	}
	return s.metadata.Fetch(ctx, rawURL), nil
}

func fillFromMetadata(it *domain.SavedItem, meta provider.PageMetadata) {
	if it.Title == "" {
		it.Title = meta.Title
	}
	if it.Platform == "" {
		it.Platform = meta.Platform
	}
	if it.ContentType == "" {
		it.ContentType = meta.ContentType
	}
	if it.ThumbnailURL == nil || *it.ThumbnailURL == "" {
		it.ThumbnailURL = meta.ThumbnailURL
	}
}

func applyDefaults(it *domain.SavedItem) {
	if it.Title == "" {
		it.Title = it.URL
	}
	if it.Platform == "" {
		it.Platform = domain.DefaultPlatform
	}
	if it.ContentType == "" {
		it.ContentType = domain.DefaultContentType
	}
	if it.Tags == nil {
		it.Tags = []string{}
	}
	if it.Collections == nil {
		it.Collections = []uuid.UUID{}
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
