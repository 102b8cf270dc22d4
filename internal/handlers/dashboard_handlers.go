package handlers

import (
	"net/http"
	"time"

	"growe/internal/analytics"

	"github.com/labstack/echo/v4"
)

type DashboardHandlers struct {
	dashboard *analytics.DashboardService
	now       func() time.Time
}

func NewDashboardHandlers(dashboard *analytics.DashboardService) *DashboardHandlers {
	return &DashboardHandlers{
		dashboard: dashboard,
		now:       time.Now,
	}
}

// Stats handles the dashboard summary counts
func (h *DashboardHandlers) Stats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context(), h.now())
	if err != nil {
		return toHTTPError(err, "Dashboard")
	}
	return c.JSON(http.StatusOK, stats)
}
