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
	env     string
	version string
}

// NewHealthHandler creates a HealthHandler. A nil db reports the database
// component as disabled.
func NewHealthHandler(db dbPinger, env, version string) *HealthHandler {
	return &HealthHandler{db: db, env: env, version: version}
}

// HealthResponse is the JSON response for /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Version string `json:"version,omitempty"`
}

// ReadyResponse is the JSON response for /ready.
type ReadyResponse struct {
	Status     string                `json:"status"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Health is the liveness probe. Always returns 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Env:     h.env,
		Version: h.version,
	})
}

// Ready is the readiness probe. Pings the DB with latency measurement:
// 200 if OK or disabled, 503 if down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusOK, ReadyResponse{
			Status:     "ok",
			Components: map[string]CompStatus{"database": {Status: "disabled"}},
			Timestamp:  time.Now(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ReadyResponse{
			Status:     "down",
			Components: map[string]CompStatus{"database": {Status: "down"}},
			Timestamp:  time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ReadyResponse{
		Status:     "ok",
		Components: map[string]CompStatus{"database": {Status: "ok", Latency: latency.String()}},
		Timestamp:  time.Now(),
	})
}
