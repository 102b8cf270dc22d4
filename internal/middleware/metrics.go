package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"growe/internal/common"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growe_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "growe_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growe_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	leadsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "growe_shipper_leads_submitted_total",
			Help: "Shipper leads accepted through the public intake route",
		},
	)
)

// Metrics records request counts and latencies labelled by route template
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := responseStatus(c.Response().Status, err)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// responseStatus returns the code the error handler will write for err
func responseStatus(written int, err error) int {
	if err == nil {
		return written
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	if _, ok := common.IsValidationError(err); ok {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func RecordLogin(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}

func RecordLeadSubmitted() {
	leadsSubmitted.Inc()
}
