package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/provider"
	"github.com/heartmarshall/stash-backend/internal/service/item"
)

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	ExtractMetadata(ctx context.Context, rawURL string) (provider.PageMetadata, error)
	Create(ctx context.Context, user *domain.User, input item.CreateInput) (*domain.SavedItem, error)
	List(ctx context.Context, user *domain.User, input item.ListInput) ([]domain.SavedItem, error)
	Get(ctx context.Context, user *domain.User, itemID uuid.UUID) (*domain.SavedItem, error)
	Update(ctx context.Context, user *domain.User, itemID uuid.UUID, input item.UpdateInput) (*domain.SavedItem, error)
	Delete(ctx context.Context, user *domain.User, itemID uuid.UUID) error
	ListTags(ctx context.Context, user *domain.User) ([]string, error)
	Search(ctx context.Context, user *domain.User, q string) ([]domain.SavedItem, error)
	AdvancedSearch(ctx context.Context, user *domain.User, input item.AdvancedSearchInput) ([]domain.SavedItem, error)
}

// ItemHandler serves saved item, search and tag endpoints.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "item")}
}

type extractMetadataRequest struct {
	URL string `json:"url"`
}

type createItemRequest struct {
	URL          string   `json:"url"`
	Title        *string  `json:"title"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Platform     *string  `json:"platform"`
	ContentType  *string  `json:"content_type"`
	Notes        *string  `json:"notes"`
	Tags         []string `json:"tags"`
	Collections  []string `json:"collections"`
}

type updateItemRequest struct {
	Title       *string  `json:"title"`
	Notes       *string  `json:"notes"`
	Tags        []string `json:"tags"`
	Collections []string `json:"collections"`
}

type searchScope struct {
	Titles bool `json:"titles"`
	Notes  bool `json:"notes"`
	Tags   bool `json:"tags"`
}

type searchFilters struct {
	Platform     *string `json:"platform"`
	CollectionID *string `json:"collection_id"`
}

type advancedSearchResponse struct {
	Results  []itemView    `json:"results"`
	Total    int           `json:"total"`
	SearchIn searchScope   `json:"search_in"`
	Filters  searchFilters `json:"filters"`
}

// ExtractMetadata handles POST /extract-metadata.
func (h *ItemHandler) ExtractMetadata(w http.ResponseWriter, r *http.Request) {
	var req extractMetadataRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	meta, err := h.svc.ExtractMetadata(r.Context(), req.URL)
	if err != nil {
		respondError(w, r, h.log, err, "Page")
		return
	}
	writeJSON(w, http.StatusOK, toMetadataView(meta))
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req createItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	collections, err := parseIDs("collections", req.Collections)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}

	it, err := h.svc.Create(r.Context(), user, item.CreateInput{
		URL:          req.URL,
		Title:        req.Title,
		ThumbnailURL: req.ThumbnailURL,
		Platform:     req.Platform,
		ContentType:  req.ContentType,
		Notes:        req.Notes,
		Tags:         req.Tags,
		Collections:  collections,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, toItemView(it))
}

// List handles GET /items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	collectionID, ok := queryID(w, r, "collection")
	if !ok {
		return
	}

	items, err := h.svc.List(r.Context(), user, item.ListInput{
		Sort:         r.URL.Query().Get("sort"),
		Platform:     optionalQuery(r, "platform"),
		CollectionID: collectionID,
		Tag:          optionalQuery(r, "tag"),
	})
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, toItemViews(items))
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Item")
	if !ok {
		return
	}

	it, err := h.svc.Get(r.Context(), user, id)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, toItemView(it))
}

// Update handles PUT /items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Item")
	if !ok {
		return
	}
	var req updateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	collections, err := parseIDs("collections", req.Collections)
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}

	it, err := h.svc.Update(r.Context(), user, id, item.UpdateInput{
		Title:       req.Title,
		Notes:       req.Notes,
		Tags:        req.Tags,
		Collections: collections,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, toItemView(it))
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Item")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), user, id); err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Item deleted"})
}

// Tags handles GET /tags.
func (h *ItemHandler) Tags(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	tags, err := h.svc.ListTags(r.Context(), user)
	if err != nil {
		respondError(w, r, h.log, err, "Tag")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(tags))
}

// Search handles GET /search?q=.
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	items, err := h.svc.Search(r.Context(), user, r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}
	writeJSON(w, http.StatusOK, toItemViews(items))
}

// AdvancedSearch handles GET /search/advanced.
func (h *ItemHandler) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	scope := searchScope{}
	for _, f := range []struct {
		key string
		dst *bool
	}{
		{"search_titles", &scope.Titles},
		{"search_notes", &scope.Notes},
		{"search_tags", &scope.Tags},
	} {
		v, ok := queryBool(w, r, f.key, true)
		if !ok {
			return
		}
		*f.dst = v
	}

	collectionID, ok := queryID(w, r, "collection_id")
	if !ok {
		return
	}
	platform := optionalQuery(r, "platform")

	items, err := h.svc.AdvancedSearch(r.Context(), user, item.AdvancedSearchInput{
		Query:        r.URL.Query().Get("q"),
		InTitles:     scope.Titles,
		InNotes:      scope.Notes,
		InTags:       scope.Tags,
		Platform:     platform,
		CollectionID: collectionID,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Item")
		return
	}

	resp := advancedSearchResponse{
		Results:  toItemViews(items),
		Total:    len(items),
		SearchIn: scope,
		Filters:  searchFilters{Platform: platform},
	}
	if collectionID != nil {
		s := collectionID.String()
		resp.Filters.CollectionID = &s
	}
	writeJSON(w, http.StatusOK, resp)
}

// queryID parses an optional UUID query parameter.
func queryID(w http.ResponseWriter, r *http.Request, key string) (*uuid.UUID, bool) {
	raw := optionalQuery(r, key)
	if raw == nil {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, key+": invalid id")
		return nil, false
	}
	return &id, true
}

// queryBool parses an optional boolean query parameter.
func queryBool(w http.ResponseWriter, r *http.Request, key string, def bool) (bool, bool) {
	raw := optionalQuery(r, key)
	if raw == nil {
		return def, true
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, key+": must be true or false")
		return false, false
	}
	return v, true
}
