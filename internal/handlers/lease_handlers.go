package handlers

import (
	"net/http"
	"time"

	"growe/internal/models"
	"growe/internal/services"

	"github.com/labstack/echo/v4"
)

// LeaseHandlers adds the expiring-lease query to the lease record handlers
type LeaseHandlers struct {
	*RecordHandlers[*models.Lease]
	leaseService services.LeaseService
	now          func() time.Time
}

func NewLeaseHandlers(leaseService services.LeaseService) *LeaseHandlers {
	return &LeaseHandlers{
		RecordHandlers: NewRecordHandlers[*models.Lease](leaseService, "Lease", func() *models.Lease { return &models.Lease{} }),
		leaseService:   leaseService,
		now:            time.Now,
	}
}

// ListExpiring handles getting Active leases ending within the next 180 days
func (h *LeaseHandlers) ListExpiring(c echo.Context) error {
	leases, err := h.leaseService.ListExpiring(c.Request().Context(), h.now())
	if err != nil {
		return toHTTPError(err, "Lease")
	}
	return c.JSON(http.StatusOK, leases)
}
