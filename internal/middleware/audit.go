package middleware

import (
	"log"
	"net/http"

	"growe/internal/common"

	"github.com/labstack/echo/v4"
)

// Audit logs every write request with the acting identity and outcome. Reads
// are skipped. Request bodies are never logged.
func Audit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			if !shouldAudit(c.Request().Method) {
				return err
			}

			ctx := c.Request().Context()
			userID, ok := common.GetUserIDFromContext(ctx)
			if !ok {
				userID = "anonymous"
			}
			role, _ := common.GetRoleFromContext(ctx)

			outcome := "ok"
			if err != nil {
				outcome = err.Error()
			}

			log.Printf("AUDIT: %s %s user=%s role=%s ip=%s outcome=%q",
				c.Request().Method, c.Path(), userID, role, c.RealIP(), outcome)
			return err
		}
	}
}

func shouldAudit(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
