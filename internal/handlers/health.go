package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ynaht/ynaht/internal/blobstore"
)

// HealthChecker handles health check requests
type HealthChecker struct {
	store blobstore.Store
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(store blobstore.Store) *HealthChecker {
	return &HealthChecker{store: store}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles the /healthz endpoint. Extended mode also pings the
// backing blob store.
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if r.URL.Query().Get("mode") == "extended" {
		checks := make(map[string]string)
		if err := h.checkStore(r.Context()); err != nil {
			response.Status = "unhealthy"
			checks["store"] = "unhealthy: " + err.Error()
		} else {
			checks["store"] = "healthy"
		}
		response.Checks = checks

		status := http.StatusOK
		if response.Status == "unhealthy" {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, response)
		return
	}

	respondJSON(w, http.StatusOK, response)
}

func (h *HealthChecker) checkStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.store.Ping(ctx)
}
