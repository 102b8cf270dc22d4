package handlers

import (
	"growe/internal/common"
	"growe/internal/middleware"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// APIVersion is reported in the X-API-Version header
const APIVersion = "1.0.0"

// NewServer builds the echo instance serving api under /api
func NewServer(api *API, rbac *middleware.RBACMiddleware) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = common.NewValidator()
	// Client IP comes from the connection only; forwarded headers are not trusted.
	e.IPExtractor = echo.ExtractIPDirect()

	// Global middleware
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.Metrics())
	e.Use(middleware.Audit())

	g := e.Group("/api", middleware.VersionHeader(APIVersion))
	RegisterRoutes(g, api.Routes(), rbac)

	return e
}
