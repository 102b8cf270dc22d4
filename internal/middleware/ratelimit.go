package middleware

import (
	"log"
	"net/http"
	"time"

	"growe/internal/caching"

	"github.com/labstack/echo/v4"
)

// RateLimit caps requests per client IP within window. When the cache is
// unavailable requests are let through.
func RateLimit(cacheSvc caching.CacheService, name string, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cacheSvc == nil || limit <= 0 {
				return next(c)
			}

			limited, err := cacheSvc.IsRateLimited(c.Request().Context(), name+":"+c.RealIP(), limit, window)
			if err != nil {
				log.Printf("WARN: rate limit check failed for %s: %v", name, err)
				return next(c)
			}
			if limited {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, try again later")
			}
			return next(c)
		}
	}
}
