package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is a dependency the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlers handles the liveness endpoint
type HealthHandlers struct {
	checks map[string]Pinger
}

// NewHealthHandlers creates health handlers probing the named dependencies. Nil entries are skipped.
func NewHealthHandlers(checks map[string]Pinger) *HealthHandlers {
	return &HealthHandlers{checks: checks}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
}

// HealthCheck reports liveness. A failing dependency marks the status degraded
// but the response code stays 200.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Services:  make(map[string]string, len(h.checks)),
	}

	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check.Ping(ctx); err != nil {
			health.Services[name] = "unhealthy"
			health.Status = "degraded"
		} else {
			health.Services[name] = "healthy"
		}
	}

	return c.JSON(http.StatusOK, health)
}
