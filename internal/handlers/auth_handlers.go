package handlers

import (
	"errors"
	"net/http"

	"growe/internal/common"
	"growe/internal/middleware"
	"growe/internal/models"
	"growe/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	authService services.AuthService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
	}
}

// Login handles user login with email and password
func (h *AuthHandlers) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			middleware.RecordLogin("invalid_credentials")
		} else {
			middleware.RecordLogin("error")
		}
		return toHTTPError(err, "User")
	}

	middleware.RecordLogin("success")
	return c.JSON(http.StatusOK, resp)
}

// Logout revokes the token used for this request
func (h *AuthHandlers) Logout(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	if err := h.authService.RevokeToken(c.Request().Context(), claims); err != nil {
		return toHTTPError(err, "Token")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

// Me returns the identity carried by the current token
func (h *AuthHandlers) Me(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":         claims.UserID,
		"email":      claims.Email,
		"role":       claims.Role,
		"expires_at": claims.ExpiresAt,
	})
}
