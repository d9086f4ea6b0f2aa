package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// collectionService defines the minimal interface needed by CollectionHandler.
type collectionService interface {
	Create(ctx context.Context, user *domain.User, name string) (*domain.Collection, error)
	List(ctx context.Context, user *domain.User) ([]domain.Collection, error)
	Rename(ctx context.Context, user *domain.User, id uuid.UUID, name string) (*domain.Collection, error)
	Delete(ctx context.Context, user *domain.User, id uuid.UUID) error
}

// CollectionHandler serves collection endpoints.
type CollectionHandler struct {
	svc collectionService
	log *slog.Logger
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(svc collectionService, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{svc: svc, log: logger.With("handler", "collection")}
}

type collectionRequest struct {
	Name string `json:"name"`
}

// Create handles POST /collections.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req collectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), user, req.Name)
	if err != nil {
		respondError(w, r, h.log, err, "Collection")
		return
	}
	writeJSON(w, http.StatusOK, toCollectionView(c))
}

// List handles GET /collections.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	cs, err := h.svc.List(r.Context(), user)
	if err != nil {
		respondError(w, r, h.log, err, "Collection")
		return
	}
	writeJSON(w, http.StatusOK, toCollectionViews(cs))
}

// Rename handles PUT /collections/{id}.
func (h *CollectionHandler) Rename(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Collection")
	if !ok {
		return
	}
	var req collectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Rename(r.Context(), user, id, req.Name)
	if err != nil {
		respondError(w, r, h.log, err, "Collection")
		return
	}
	writeJSON(w, http.StatusOK, toCollectionView(c))
}

// Delete handles DELETE /collections/{id}.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "Collection")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), user, id); err != nil {
		respondError(w, r, h.log, err, "Collection")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Collection deleted"})
}
