package item

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

const (
	maxURLLen         = 2048
	maxTitleLen       = 500
	maxNotesLen       = 10000
	maxTags           = 50
	maxTagLen         = 50
	maxItemCollection = 100
)

// CreateInput holds parameters for saving a URL. Optional fields left nil are
// filled from page metadata.
type CreateInput struct {
	URL          string
	Title        *string
	ThumbnailURL *string
	Platform     *string
	ContentType  *string
	Notes        *string
	Tags         []string
	Collections  []uuid.UUID
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.URL == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	} else if len(i.URL) > maxURLLen {
		errs = append(errs, domain.FieldError{Field: "url", Message: "too long"})
	}

	if i.Title != nil && utf8.RuneCountInString(*i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	errs = append(errs, validateTags(i.Tags)...)

	if len(i.Collections) > maxItemCollection {
		errs = append(errs, domain.FieldError{Field: "collections", Message: "too many"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds list filters. Sort "newest" (or empty) orders by
// created_at descending; any other value ascending.
type ListInput struct {
	Sort         string
	Platform     *string
	CollectionID *uuid.UUID
	Tag          *string
}

// Newest reports whether the list is ordered newest first.
func (i ListInput) Newest() bool {
	return i.Sort == "" || i.Sort == "newest"
}

// UpdateInput holds a partial item update. Nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	Notes       *string
	Tags        []string
	Collections []uuid.UUID
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if utf8.RuneCountInString(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	errs = append(errs, validateTags(i.Tags)...)

	if len(i.Collections) > maxItemCollection {
		errs = append(errs, domain.FieldError{Field: "collections", Message: "too many"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AdvancedSearchInput selects which fields the query is matched against.
type AdvancedSearchInput struct {
	Query        string
	InTitles     bool
	InNotes      bool
	InTags       bool
	Platform     *string
	CollectionID *uuid.UUID
}

func validateTags(tags []string) []domain.FieldError {
	if len(tags) > maxTags {
		return []domain.FieldError{{Field: "tags", Message: "too many"}}
	}
	for _, t := range tags {
		if utf8.RuneCountInString(t) > maxTagLen {
			return []domain.FieldError{{Field: "tags", Message: "tag too long"}}
		}
	}
	return nil
}
