package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied to items created without metadata.
const (
	DefaultPlatform    = "Web"
	DefaultContentType = "article"
)

// MaxListItems caps every item listing.
const MaxListItems = 1000

// SavedItem is a URL saved by a user.
type SavedItem struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	URL                 string
	Title               string
	ThumbnailURL        *string
	Platform            string
	ContentType         string
	Notes               string
	Tags                []string
	Collections         []uuid.UUID
	AISummary           []string
	ExtractedIdeas      []ExtractedIdea
	ActionItems         []ActionItem
	SuggestedCollection *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// InCollection reports whether the item references the collection.
func (i *SavedItem) InCollection(id uuid.UUID) bool {
	for _, c := range i.Collections {
		if c == id {
			return true
		}
	}
	return false
}

// HasPendingActions reports whether any action item is not completed.
func (i *SavedItem) HasPendingActions() bool {
	for _, a := range i.ActionItems {
		if !a.Completed {
			return true
		}
	}
	return false
}

// IdeaType classifies an extracted idea.
type IdeaType string

const (
	IdeaConcept  IdeaType = "concept"
	IdeaInsight  IdeaType = "insight"
	IdeaStrategy IdeaType = "strategy"
	IdeaQuote    IdeaType = "quote"
	IdeaTakeaway IdeaType = "takeaway"
)

func (t IdeaType) IsValid() bool {
	switch t {
	case IdeaConcept, IdeaInsight, IdeaStrategy, IdeaQuote, IdeaTakeaway:
		return true
	}
	return false
}

// ExtractedIdea is one idea pulled out of a saved item.
type ExtractedIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        IdeaType `json:"type"`
}

// ActionItem is a task derived from a saved item.
type ActionItem struct {
	Task          string `json:"task"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimated_time"`
	Category      string `json:"category"`
	Completed     bool   `json:"completed"`
}

// SmartTag is a suggested classification label.
type SmartTag struct {
	Tag        string
	Confidence string
	Cluster    string
	IsNew      bool
}

// ItemFilter holds exact-match filters for listing items.
type ItemFilter struct {
	Platform     *string
	CollectionID *uuid.UUID
	Tag          *string
	Newest       bool
	Limit        int
}

// SearchQuery describes a substring search over a user's items.
type SearchQuery struct {
	Text         string
	InTitles     bool
	InNotes      bool
	InTags       bool
	Platform     *string
	CollectionID *uuid.UUID
	Limit        int
}

// ItemUpdate carries a partial update. Nil fields are left untouched; an
// empty non-nil slice clears the list.
type ItemUpdate struct {
	Title       *string
	Notes       *string
	Tags        []string
	Collections []uuid.UUID
}

// IsEmpty reports whether the update changes nothing.
func (u ItemUpdate) IsEmpty() bool {
	return u.Title == nil && u.Notes == nil && u.Tags == nil && u.Collections == nil
}

// TagCount is a tag with the number of items carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// ItemStats aggregates a user's library for the insights view.
type ItemStats struct {
	Total     int
	ThisWeek  int
	Platforms map[string]int
	TopTags   []TagCount
}
