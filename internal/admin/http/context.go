// Package http provides HTTP handlers and middleware for admin authentication.
package http

import (
	"context"

	adminDomain "github.com/ocial123/qr-event-app/internal/admin/domain"
)

// adminKey is a context key type for storing authenticated admins.
type adminKey struct{}

// WithAdmin stores an authenticated admin in the context.
// This is typically called by the authentication middleware after successful session validation.
func WithAdmin(ctx context.Context, admin *adminDomain.Admin) context.Context {
	return context.WithValue(ctx, adminKey{}, admin)
}

// GetAdmin retrieves an authenticated admin from the context.
// Returns (admin, true) if an admin is present, or (nil, false) if none was set.
func GetAdmin(ctx context.Context) (*adminDomain.Admin, bool) {
	admin, ok := ctx.Value(adminKey{}).(*adminDomain.Admin)
	return admin, ok
}
