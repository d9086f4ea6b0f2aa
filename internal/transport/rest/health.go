package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// ProbeResponse is the JSON response for /live and /ready.
type ProbeResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB with latency measurement: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ProbeResponse{
			Status:     "down",
			Version:    h.version,
			Components: map[string]CompStatus{"database": {Status: "down"}},
			Timestamp:  time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:     "ok",
		Version:    h.version,
		Components: map[string]CompStatus{"database": {Status: "ok", Latency: latency.String()}},
		Timestamp:  time.Now(),
	})
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

// Root handles GET /api/.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Message: "Stash API is running", Version: h.version})
}
