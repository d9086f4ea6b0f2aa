package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/stash-backend/internal/domain"
	"github.com/heartmarshall/stash-backend/internal/transport/middleware"
)

// errorResponse is the error body of every endpoint.
type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// decodeJSON reads the request body into v. On failure it writes the error
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// currentUser returns the user resolved by the auth middleware. Handlers
// mounted outside the auth group never call it.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	u, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return u, true
}

// pathID parses a UUID URL parameter. An id that is not a UUID cannot match
// any row, so it is reported as not found.
func pathID(w http.ResponseWriter, r *http.Request, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusNotFound, entity+" not found")
		return uuid.Nil, false
	}
	return id, true
}

func parseIDs(field string, raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.NewValidationError(field, fmt.Sprintf("invalid id %q", s))
		}
		out = append(out, id)
	}
	return out, nil
}

func optionalQuery(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// respondError maps a service error to a status code and detail message.
// entity names the resource in not-found messages.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, entity string) {
	var (
		ve *domain.ValidationError
		le *domain.LimitError
	)

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, validationDetail(ve))
	case errors.As(err, &le):
		writeError(w, http.StatusForbidden, le.Reason)
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, "Already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid request")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func validationDetail(ve *domain.ValidationError) string {
	parts := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	if len(parts) == 0 {
		return "Invalid request"
	}
	return strings.Join(parts, "; ")
}
