package handlers

import (
	"net/http"

	"growe/internal/middleware"
	"growe/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// API bundles the handlers served under /api
type API struct {
	Auth       *AuthHandlers
	ThreePLs   *RecordHandlers[*models.ThreePL]
	Warehouses *RecordHandlers[*models.Warehouse]
	Leases     *LeaseHandlers
	Deals      *RecordHandlers[*models.Deal]
	Leads      *RecordHandlers[*models.ShipperLead]
	Dashboard  *DashboardHandlers
	Health     *HealthHandlers

	// LeadLimiter throttles the public lead intake route; may be nil
	LeadLimiter echo.MiddlewareFunc
}

// Route is one entry of the access policy table
type Route struct {
	Method     string
	Path       string
	Access     middleware.Access
	Handler    echo.HandlerFunc
	Middleware []echo.MiddlewareFunc
}

// Routes returns the static route -> access policy table
func (a *API) Routes() []Route {
	var leadLimits []echo.MiddlewareFunc
	if a.LeadLimiter != nil {
		leadLimits = append(leadLimits, a.LeadLimiter)
	}

	return []Route{
		{Method: http.MethodGet, Path: "/health", Access: middleware.Public, Handler: a.Health.HealthCheck},
		{Method: http.MethodGet, Path: "/metrics", Access: middleware.Public, Handler: echo.WrapHandler(promhttp.Handler())},

		{Method: http.MethodPost, Path: "/auth/login", Access: middleware.Public, Handler: a.Auth.Login},
		{Method: http.MethodPost, Path: "/auth/logout", Access: middleware.Authenticated, Handler: a.Auth.Logout},
		{Method: http.MethodGet, Path: "/auth/me", Access: middleware.Authenticated, Handler: a.Auth.Me},

		{Method: http.MethodGet, Path: "/3pls", Access: middleware.Authenticated, Handler: a.ThreePLs.List},
		{Method: http.MethodPost, Path: "/3pls", Access: middleware.AdminOnly, Handler: a.ThreePLs.Create},

		{Method: http.MethodGet, Path: "/warehouses", Access: middleware.Authenticated, Handler: a.Warehouses.List},
		{Method: http.MethodPost, Path: "/warehouses", Access: middleware.AdminOnly, Handler: a.Warehouses.Create},

		{Method: http.MethodGet, Path: "/leases", Access: middleware.Authenticated, Handler: a.Leases.List},
		{Method: http.MethodGet, Path: "/leases/expiring", Access: middleware.Authenticated, Handler: a.Leases.ListExpiring},
		{Method: http.MethodPost, Path: "/leases", Access: middleware.AdminOnly, Handler: a.Leases.Create},

		{Method: http.MethodGet, Path: "/deals", Access: middleware.Authenticated, Handler: a.Deals.List},
		{Method: http.MethodPost, Path: "/deals", Access: middleware.Authenticated, Handler: a.Deals.Create},
		{Method: http.MethodPut, Path: "/deals/:id", Access: middleware.Authenticated, Handler: a.Deals.Update},

		{Method: http.MethodPost, Path: "/shipper-leads", Access: middleware.Public, Handler: a.Leads.Create, Middleware: leadLimits},
		{Method: http.MethodGet, Path: "/shipper-leads", Access: middleware.Authenticated, Handler: a.Leads.List},

		{Method: http.MethodGet, Path: "/dashboard/stats", Access: middleware.Authenticated, Handler: a.Dashboard.Stats},
	}
}

// RegisterRoutes adds every route to g behind the middleware its access level requires
func RegisterRoutes(g *echo.Group, routes []Route, rbac *middleware.RBACMiddleware) {
	for _, r := range routes {
		chain := append(rbac.For(r.Access), r.Middleware...)
		g.Add(r.Method, r.Path, r.Handler, chain...)
	}
}
