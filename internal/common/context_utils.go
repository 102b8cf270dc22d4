package common

import (
	"context"
	"strings"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
	RoleKey   contextKey = "role"
)

// Roles embedded in session tokens
const (
	RoleAdmin   = "admin"
	RolePartner = "partner"
	RoleViewer  = "viewer"
)

// ErrorResponse is the JSON body written for every failed request
type ErrorResponse struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

// NormalizeRole maps stored role names onto the three token roles.
// Returns false for anything unrecognised.
func NormalizeRole(role string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleAdmin:
		return RoleAdmin, true
	case RolePartner, "3pl_partner":
		return RolePartner, true
	case RoleViewer:
		return RoleViewer, true
	}
	return "", false
}

// WithIdentity stores the authenticated identity on the request context
func WithIdentity(ctx context.Context, userID, email, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, EmailKey, email)
	return context.WithValue(ctx, RoleKey, role)
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext extracts the role from the request context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok && role != ""
}
