package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/service/export"
)

// exportService defines the minimal interface needed by ExportHandler.
type exportService interface {
	Vault(ctx context.Context, user *domain.User) (*export.Vault, error)
}

// ExportHandler serves the vault export.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

type vaultResponse struct {
	ExportedAt       time.Time        `json:"exported_at"`
	User             userView         `json:"user"`
	Items            []itemView       `json:"items"`
	Collections      []collectionView `json:"collections"`
	Tags             []string         `json:"tags"`
	TotalItems       int              `json:"total_items"`
	TotalCollections int              `json:"total_collections"`
}

// Vault handles GET /export/vault.
func (h *ExportHandler) Vault(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	v, err := h.svc.Vault(r.Context(), user)
	if err != nil {
		respondError(w, r, h.log, err, "User")
		return
	}

	writeJSON(w, http.StatusOK, vaultResponse{
		ExportedAt:       v.ExportedAt,
		User:             toUserView(v.User),
		Items:            toItemViews(v.Items),
		Collections:      toCollectionViews(v.Collections),
		Tags:             nonNil(v.Tags),
		TotalItems:       len(v.Items),
		TotalCollections: len(v.Collections),
	})
}
