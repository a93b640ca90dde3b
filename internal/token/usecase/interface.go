// Package usecase defines the token provider used by every upstream call.
package usecase

import (
	"context"
	"time"
)

// TokenProvider hands out a bearer token valid for immediate use against the upstream API.
type TokenProvider interface {
	// GetAccessToken returns the cached token while it is valid, otherwise performs a single
	// client-credentials exchange shared by all concurrent callers. Failures are returned as
	// *TokenAcquisitionError and are never cached.
	GetAccessToken(ctx context.Context) (string, error)

	// Invalidate drops the cached token when it is still token, forcing the next call to
	// exchange again. A token refreshed by a concurrent caller is kept.
	Invalidate(token string)

	// ExpiresAt reports when the cached token stops being handed out.
	ExpiresAt() time.Time
}
