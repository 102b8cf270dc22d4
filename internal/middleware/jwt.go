package middleware

import (
	"errors"
	"net/http"

	"growe/internal/common"
	"growe/internal/services"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// ClaimsContextKey is the echo.Context key holding *services.TokenClaims
const ClaimsContextKey = "claims"

// JWTMiddleware validates the Bearer token and stores its claims on the
// echo context and the identity on the request context.
func JWTMiddleware(authService services.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsContextKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return authService.VerifyToken(c.Request().Context(), auth)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := GetClaims(c)
			if !ok {
				return
			}
			ctx := common.WithIdentity(c.Request().Context(), claims.UserID, claims.Email, claims.Role)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, common.ErrTokenExpired):
				return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
			case errors.Is(err, common.ErrTokenRevoked):
				return echo.NewHTTPError(http.StatusUnauthorized, "Token revoked")
			case errors.Is(err, common.ErrTokenInvalid):
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
		},
	})
}

// GetClaims returns the verified token claims for the current request
func GetClaims(c echo.Context) (*services.TokenClaims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*services.TokenClaims)
	return claims, ok && claims != nil
}
