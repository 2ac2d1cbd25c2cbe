// Package http wires the portal's HTTP surface: health probes, the Prometheus
// endpoint and the request middleware shared by every route.
package http

import (
	"context"
	"net/http"
	"time"

	"cahaya-digital/internal/handler/http/respond"
	"cahaya-digital/internal/observability/metrics"
	"cahaya-digital/internal/repository"
	"cahaya-digital/internal/resilience/circuitbreaker"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports storage reachability and the storage circuit breaker state.
type HealthHandler struct {
	Storage repository.Storage
	// Breaker is nil for the memory driver.
	Breaker *circuitbreaker.CircuitBreaker
	Driver  string
	Version string
}

// ServeHTTP godoc
// @Summary      Health check
// @Description  Pings the storage backend and reports the circuit breaker state
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{"storage": h.checkStorage(ctx)}
	healthy := checks["storage"].Status == "healthy"

	if h.Breaker != nil {
		state := h.Breaker.State().String()
		check := CheckStatus{Status: "healthy", Details: map[string]any{"state": state}}
		if h.Breaker.IsOpen() {
			check.Status = "unhealthy"
			check.Message = "circuit breaker open"
			healthy = false
		}
		checks["circuit_breaker"] = check
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkStorage(ctx context.Context) CheckStatus {
	if h.Storage == nil {
		metrics.SetStorageUp(false)
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	details := map[string]any{"driver": h.Driver}
	if err := h.Storage.Ping(ctx); err != nil {
		metrics.SetStorageUp(false)
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err), Details: details}
	}
	metrics.SetStorageUp(true)
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler answers readiness probes: 200 once storage answers a ping.
type ReadyHandler struct {
	Storage repository.Storage
}

// ServeHTTP godoc
// @Summary      Readiness probe
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "ready"
// @Failure      503  {string}  string  "storage not ready"
// @Router       /ready [get]
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Storage == nil {
		http.Error(w, "storage not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.Storage.Ping(ctx); err != nil {
		http.Error(w, "storage not ready", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler answers liveness probes. It never touches storage.
type LiveHandler struct{}

// ServeHTTP godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "alive"
// @Router       /live [get]
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
