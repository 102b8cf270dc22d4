package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"growe/internal/common"
	"growe/internal/models"
	"growe/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noUsers struct{}

func (noUsers) Create(ctx context.Context, user *models.User) error { return nil }

func (noUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, common.ErrNotFound
}

func newGateServer(t *testing.T, now *time.Time) (*echo.Echo, services.AuthService) {
	t.Helper()
	auth := services.NewAuthService(noUsers{}, nil, "gate-secret",
		services.WithClock(func() time.Time { return *now }))
	rbac := NewRBACMiddleware(auth)

	e := echo.New()
	ok := func(c echo.Context) error {
		role, _ := common.GetRoleFromContext(c.Request().Context())
		return c.String(http.StatusOK, role)
	}
	e.GET("/public", ok, rbac.For(Public)...)
	e.GET("/any", ok, rbac.For(Authenticated)...)
	e.GET("/admin", ok, rbac.For(AdminOnly)...)
	return e, auth
}

func bearer(t *testing.T, auth services.AuthService, role string) string {
	t.Helper()
	token, err := auth.IssueToken(&models.Identity{UserID: "u-" + role, Email: role + "@x.com", Role: role})
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(e *echo.Echo, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGate_AccessMatrix(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e, auth := newGateServer(t, &now)

	admin := bearer(t, auth, common.RoleAdmin)
	partner := bearer(t, auth, common.RolePartner)
	viewer := bearer(t, auth, common.RoleViewer)

	tests := []struct {
		name   string
		path   string
		header string
		code   int
	}{
		{"public without token", "/public", "", http.StatusOK},
		{"authenticated without token", "/any", "", http.StatusUnauthorized},
		{"authenticated as viewer", "/any", viewer, http.StatusOK},
		{"authenticated as partner", "/any", partner, http.StatusOK},
		{"admin route without token", "/admin", "", http.StatusUnauthorized},
		{"admin route as partner", "/admin", partner, http.StatusForbidden},
		{"admin route as viewer", "/admin", viewer, http.StatusForbidden},
		{"admin route as admin", "/admin", admin, http.StatusOK},
		{"malformed header", "/any", "Token abc", http.StatusUnauthorized},
		{"garbage token", "/any", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.path, tt.header)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestGate_IdentityOnContext(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e, auth := newGateServer(t, &now)

	rec := doRequest(e, "/any", bearer(t, auth, common.RolePartner))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, common.RolePartner, rec.Body.String())
}

func TestGate_ExpiredToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e, auth := newGateServer(t, &now)
	header := bearer(t, auth, common.RoleAdmin)

	now = now.Add(25 * time.Hour)
	rec := doRequest(e, "/admin", header)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestRequireRole_WithoutIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := RequireRole(common.RoleAdmin)(func(c echo.Context) error { return nil })(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAccessString(t *testing.T) {
	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "admin", AdminOnly.String())
}
