package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// notifyQueue exposes the assignment notification backlog.
type notifyQueue interface {
	Enabled() bool
	Pending() int
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	queue   notifyQueue
	version string
}

// NewHealthHandler creates a HealthHandler. queue may be nil.
func NewHealthHandler(db dbPinger, queue notifyQueue, version string) *HealthHandler {
	return &HealthHandler{db: db, queue: queue, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the state of one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Pending *int   `json:"pending,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready answers 503 until the database responds to a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDatabase(r.Context())

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: db.Status, Timestamp: time.Now().UTC()})
}

// Health reports every component with the build version. Only the
// database decides the overall status; a notification backlog is
// informational.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDatabase(r.Context())
	components := map[string]ComponentStatus{"database": db}

	if h.queue != nil {
		notify := ComponentStatus{Status: "disabled"}
		if h.queue.Enabled() {
			pending := h.queue.Pending()
			notify = ComponentStatus{Status: "ok", Pending: &pending}
		}
		components["notifications"] = notify
	}

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now().UTC(),
	})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentStatus{Status: "down"}
	}
	return ComponentStatus{Status: "ok", Latency: time.Since(start).String()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
