package middleware

import (
	"net/http"

	"growe/internal/common"
	"growe/internal/services"

	"github.com/labstack/echo/v4"
)

// Access is the authorization level a route requires
type Access int

const (
	// Public routes need no token
	Public Access = iota
	// Authenticated routes need a valid token of any role
	Authenticated
	// AdminOnly routes need a valid token with the admin role
	AdminOnly
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case AdminOnly:
		return "admin"
	}
	return "unknown"
}

// RBACMiddleware turns an Access level into the middleware chain enforcing it
type RBACMiddleware struct {
	authenticate echo.MiddlewareFunc
}

func NewRBACMiddleware(authService services.AuthService) *RBACMiddleware {
	return &RBACMiddleware{
		authenticate: JWTMiddleware(authService),
	}
}

// For returns the middleware chain for the given access level
func (m *RBACMiddleware) For(access Access) []echo.MiddlewareFunc {
	switch access {
	case Authenticated:
		return []echo.MiddlewareFunc{m.authenticate}
	case AdminOnly:
		return []echo.MiddlewareFunc{m.authenticate, RequireRole(common.RoleAdmin)}
	}
	return nil
}

// RequireRole rejects requests whose token role is not one of roles. It must
// run after JWTMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := common.GetRoleFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
			if !allowed[role] {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
