// Package http provides the HTTP surface of the site backend: health
// endpoints, metrics and the middleware shared by every route. Page
// handlers live in the page subpackage.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"butuhkidul/internal/infra/probe"
)

// UpstreamChecker reports the village API state observed by the probe.
type UpstreamChecker interface {
	Ready() bool
	Status() probe.Status
}

// HealthResponse is the JSON body of /health.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "degraded"
	Timestamp string                 `json:"timestamp"` // ISO 8601
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the state of one dependency.
type CheckStatus struct {
	Status  string         `json:"status"` // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports process and upstream health. The site keeps
// serving degraded pages when the village API is down, so an unhealthy
// upstream yields "degraded" with 200 rather than 503.
type HealthHandler struct {
	Version  string
	Upstream UpstreamChecker
	now      func() time.Time
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.now != nil {
		now = h.now
	}

	checks := make(map[string]CheckStatus)
	status := "healthy"

	if h.Upstream != nil {
		check := upstreamCheck(h.Upstream.Status())
		checks["village_api"] = check
		if check.Status != "healthy" {
			status = "degraded"
		}
	}

	writeHealthJSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func upstreamCheck(s probe.Status) CheckStatus {
	check := CheckStatus{Status: "healthy", Details: map[string]any{}}
	if !s.LastRun.IsZero() {
		check.Details["last_run"] = s.LastRun.UTC().Format(time.RFC3339)
		check.Details["latency_ms"] = s.Latency.Milliseconds()
	}
	if !s.Ready {
		check.Status = "unhealthy"
		check.Message = s.LastError
		if check.Message == "" {
			check.Message = probe.ErrNotRun.Error()
		}
	}
	return check
}

// ReadyHandler answers 200 once the upstream probe has succeeded and 503
// otherwise. A nil Upstream is always ready.
type ReadyHandler struct {
	Upstream UpstreamChecker
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	if h.Upstream != nil && !h.Upstream.Ready() {
		http.Error(w, "village api not ready", http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler always answers 200 while the process can serve requests.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeText(w, "alive")
}

func writeHealthJSON(w http.ResponseWriter, code int, body HealthResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("health: failed to encode response", slog.Any("error", err))
	}
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Warn("health: failed to write response", slog.Any("error", err))
	}
}
