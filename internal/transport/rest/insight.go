package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/service/insight"
)

// insightService defines the minimal interface needed by InsightHandler.
type insightService interface {
	Summarize(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error)
	ExtractIdeas(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error)
	GenerateActionItems(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error)
	SmartTags(ctx context.Context, user *domain.User, itemID uuid.UUID) ([]domain.SmartTag, error)
	ApplySmartTag(ctx context.Context, user *domain.User, itemID uuid.UUID, tag string) (*domain.SavedItem, error)
	ToggleActionItem(ctx context.Context, user *domain.User, itemID uuid.UUID, idx int) (*domain.SavedItem, error)
	SuggestCollection(ctx context.Context, user *domain.User, itemID uuid.UUID) (*insight.CollectionSuggestion, error)
	Overview(ctx context.Context, user *domain.User) (*insight.Overview, error)
	Resurfaced(ctx context.Context, user *domain.User) ([]domain.SavedItem, error)
	Reminders(ctx context.Context, user *domain.User) ([]insight.Reminder, error)
}

// InsightHandler serves LLM-backed item endpoints, insights, resurfacing and reminders.
type InsightHandler struct {
	svc insightService
	log *slog.Logger
}

// NewInsightHandler creates an InsightHandler.
func NewInsightHandler(svc insightService, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{svc: svc, log: logger.With("handler", "insight")}
}

type smartTagView struct {
	Tag        string `json:"tag"`
	Confidence string `json:"confidence"`
	Cluster    string `json:"cluster"`
	IsNew      bool   `json:"is_new"`
}

type smartTagsResponse struct {
	Tags []smartTagView `json:"tags"`
}

type collectionSuggestionResponse struct {
	Name         string  `json:"name"`
	CollectionID *string `json:"collection_id"`
	IsExisting   bool    `json:"is_existing"`
}

type tagCountView struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type overviewResponse struct {
	TotalItems        int            `json:"total_items"`
	TotalCollections  int            `json:"total_collections"`
	ItemsThisWeek     int            `json:"items_this_week"`
	PlatformBreakdown map[string]int `json:"platform_breakdown"`
	TopTags           []tagCountView `json:"top_tags"`
	WeeklyDigest      *string        `json:"weekly_digest"`
}

type resurfacedResponse struct {
	Items []itemView `json:"items"`
	Total int        `json:"total"`
}

type reminderView struct {
	Item      itemView `json:"item"`
	Reason    string   `json:"reason"`
	DaysSaved int      `json:"days_saved"`
}

type remindersResponse struct {
	Reminders []reminderView `json:"reminders"`
	Total     int            `json:"total"`
}

// itemAction is an insight operation that returns the updated item.
type itemAction func(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error)

func (h *InsightHandler) runItemAction(w http.ResponseWriter, r *http.Request, action itemAction) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Item")
	if !ok {
		return
	}

	it, err := action(r.Context(), user, id)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, toItemView(it))
}

// Summarize handles POST /items/{id}/ai-summary.
func (h *InsightHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	h.runItemAction(w, r, h.svc.Summarize)
}

// ExtractIdeas handles POST /items/{id}/extract-ideas.
func (h *InsightHandler) ExtractIdeas(w http.ResponseWriter, r *http.Request) {
	h.runItemAction(w, r, h.svc.ExtractIdeas)
}

// ActionItems handles POST /items/{id}/action-items.
func (h *InsightHandler) ActionItems(w http.ResponseWriter, r *http.Request) {
	h.runItemAction(w, r, h.svc.GenerateActionItems)
}

// SmartTags handles POST /items/{id}/smart-tags.
func (h *InsightHandler) SmartTags(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Item")
	if !ok {
		return
	}

	tags, err := h.svc.SmartTags(r.Context(), user, id)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}

	resp := smartTagsResponse{Tags: make([]smartTagView, len(tags))}
	for i, t := range tags {
		resp.Tags[i] = smartTagView{Tag: t.Tag, Confidence: t.Confidence, Cluster: t.Cluster, IsNew: t.IsNew}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ApplySmartTag handles POST /items/{id}/apply-smart-tag?tag_name=.
func (h *InsightHandler) ApplySmartTag(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag_name")
	h.runItemAction(w, r, func(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error) {
		return h.svc.ApplySmartTag(ctx, user, itemID, tag)
	})
}

// ToggleActionItem handles PUT /items/{id}/action-items/{idx}/toggle.
func (h *InsightHandler) ToggleActionItem(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Action item not found")
		return
	}

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Item")
	if !ok {
		return
	}

	it, err := h.svc.ToggleActionItem(r.Context(), user, id, idx)
	if err != nil {
		if errors.Is(err, insight.ErrActionItemNotFound) {
			writeError(w, http.StatusNotFound, "Action item not found")
			return
		}
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, toItemView(it))
}

// SuggestCollection handles GET /items/{id}/suggest-collection.
func (h *InsightHandler) SuggestCollection(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Item")
	if !ok {
		return
	}

	s, err := h.svc.SuggestCollection(r.Context(), user, id)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}

	resp := collectionSuggestionResponse{Name: s.Name, IsExisting: s.IsExisting}
	if s.CollectionID != nil {
		cid := s.CollectionID.String()
		resp.CollectionID = &cid
	}
	writeJSON(w, http.StatusOK, resp)
}

// Overview handles GET /insights.
func (h *InsightHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	o, err := h.svc.Overview(r.Context(), user)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}

	platforms := o.Stats.Platforms
	if platforms == nil {
		platforms = map[string]int{}
	}
	top := make([]tagCountView, len(o.Stats.TopTags))
	for i, tc := range o.Stats.TopTags {
		top[i] = tagCountView{Tag: tc.Tag, Count: tc.Count}
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		TotalItems:        o.Stats.Total,
		TotalCollections:  o.TotalCollections,
		ItemsThisWeek:     o.Stats.ThisWeek,
		PlatformBreakdown: platforms,
		TopTags:           top,
		WeeklyDigest:      o.WeeklyDigest,
	})
}

// Resurfaced handles GET /resurfaced.
func (h *InsightHandler) Resurfaced(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	items, err := h.svc.Resurfaced(r.Context(), user)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, resurfacedResponse{Items: toItemViews(items), Total: len(items)})
}

// Reminders handles GET /reminders.
func (h *InsightHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	reminders, err := h.svc.Reminders(r.Context(), user)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}

	resp := remindersResponse{Reminders: make([]reminderView, len(reminders)), Total: len(reminders)}
	for i := range reminders {
		resp.Reminders[i] = reminderView{
			Item:      toItemView(&reminders[i].Item),
			Reason:    string(reminders[i].Reason),
			DaysSaved: reminders[i].DaysSaved,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
