package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"growe/internal/common"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as {"detail": "..."}; validation failures
// also carry the offending fields.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	resp := common.ErrorResponse{Detail: "Internal server error"}

	var httpErr *echo.HTTPError
	if verr, ok := common.IsValidationError(err); ok {
		code = http.StatusUnprocessableEntity
		resp.Detail = "Validation failed"
		resp.Errors = verr.Fields
	} else if errors.As(err, &httpErr) {
		code = httpErr.Code
		resp.Detail = fmt.Sprint(httpErr.Message)
		if httpErr.Internal != nil && code >= http.StatusInternalServerError {
			log.Printf("ERROR: %s %s: %v", c.Request().Method, c.Path(), httpErr.Internal)
		}
	} else {
		log.Printf("ERROR: %s %s: %v", c.Request().Method, c.Path(), err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, resp)
	}
	if writeErr != nil {
		log.Printf("ERROR: failed to write error response: %v", writeErr)
	}
}

// toHTTPError maps service errors onto HTTP errors. resource names the entity
// in not-found messages.
func toHTTPError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrTokenExpired):
		return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
	case errors.Is(err, common.ErrTokenRevoked):
		return echo.NewHTTPError(http.StatusUnauthorized, "Token revoked")
	case errors.Is(err, common.ErrTokenInvalid):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, common.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
	case errors.Is(err, common.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, resource+" not found")
	}

	if _, ok := common.IsValidationError(err); ok {
		return err
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}
