package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/provider"
)

type userView struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PlanType     string     `json:"plan_type"`
	IsPro        bool       `json:"is_pro"`
	ProExpiresAt *time.Time `json:"pro_expires_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toUserView(u *domain.User) userView {
	plan := domain.PlanFree
	if u.HasPro() {
		plan = domain.PlanPro
	}
	return userView{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		PlanType:     plan.String(),
		IsPro:        u.HasPro(),
		ProExpiresAt: u.ProExpiresAt,
		CreatedAt:    u.CreatedAt,
	}
}

type ideaView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type actionItemView struct {
	Task          string `json:"task"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimated_time"`
	Category      string `json:"category"`
	Completed     bool   `json:"completed"`
}

type itemView struct {
	ID                  string           `json:"id"`
	UserID              string           `json:"user_id"`
	URL                 string           `json:"url"`
	Title               string           `json:"title"`
	ThumbnailURL        *string          `json:"thumbnail_url"`
	Platform            string           `json:"platform"`
	ContentType         string           `json:"content_type"`
	Notes               string           `json:"notes"`
	Tags                []string         `json:"tags"`
	Collections         []string         `json:"collections"`
	AISummary           []string         `json:"ai_summary"`
	ExtractedIdeas      []ideaView       `json:"extracted_ideas"`
	ActionItems         []actionItemView `json:"action_items"`
	SuggestedCollection *string          `json:"suggested_collection"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func toItemView(it *domain.SavedItem) itemView {
	ideas := make([]ideaView, len(it.ExtractedIdeas))
	for i, idea := range it.ExtractedIdeas {
		ideas[i] = ideaView{Title: idea.Title, Description: idea.Description, Type: string(idea.Type)}
	}
	actions := make([]actionItemView, len(it.ActionItems))
	for i, a := range it.ActionItems {
		actions[i] = actionItemView(a)
	}
	return itemView{
		ID:                  it.ID.String(),
		UserID:              it.UserID.String(),
		URL:                 it.URL,
		Title:               it.Title,
		ThumbnailURL:        it.ThumbnailURL,
		Platform:            it.Platform,
		ContentType:         it.ContentType,
		Notes:               it.Notes,
		Tags:                nonNil(it.Tags),
		Collections:         idStrings(it.Collections),
		AISummary:           nonNil(it.AISummary),
		ExtractedIdeas:      ideas,
		ActionItems:         actions,
		SuggestedCollection: it.SuggestedCollection,
		CreatedAt:           it.CreatedAt,
		UpdatedAt:           it.UpdatedAt,
	}
}

func toItemViews(items []domain.SavedItem) []itemView {
	out := make([]itemView, len(items))
	for i := range items {
		out[i] = toItemView(&items[i])
	}
	return out
}

type collectionView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	IsAuto    bool      `json:"is_auto"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

func toCollectionView(c *domain.Collection) collectionView {
	return collectionView{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Name:      c.Name,
		IsAuto:    c.IsAuto,
		ItemCount: c.ItemCount,
		CreatedAt: c.CreatedAt,
	}
}

func toCollectionViews(cs []domain.Collection) []collectionView {
	out := make([]collectionView, len(cs))
	for i := range cs {
		out[i] = toCollectionView(&cs[i])
	}
	return out
}

type metadataView struct {
	Title         string   `json:"title"`
	ThumbnailURL  *string  `json:"thumbnail_url"`
	Platform      string   `json:"platform"`
	ContentType   string   `json:"content_type"`
	SuggestedTags []string `json:"suggested_tags"`
}

func toMetadataView(m provider.PageMetadata) metadataView {
	return metadataView{
		Title:         m.Title,
		ThumbnailURL:  m.ThumbnailURL,
		Platform:      m.Platform,
		ContentType:   m.ContentType,
		SuggestedTags: nonNil(m.SuggestedTags),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
