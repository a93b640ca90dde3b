// Package http provides the gateway login endpoint and its authentication and rate-limit middleware.
package http

import (
	"context"

	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
)

// principalKey is a context key type for storing the authenticated caller.
type principalKey struct{}

// WithPrincipal stores the authenticated caller in the context.
// This is typically called by the authentication middleware after successful token validation.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated caller from the context.
// Returns (principal, true) if present, or (nil, false) if no caller was set.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok
}
