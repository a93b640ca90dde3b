// Package domain defines the upstream access token model shared by the token
// cache, the identity provider client and the token provider.
package domain

import "time"

const (
	// DefaultExpiresInSeconds is assumed when the identity provider omits expires_in.
	DefaultExpiresInSeconds = 3600

	// DefaultSafetyMargin is subtracted from the token lifetime before caching.
	DefaultSafetyMargin = 300 * time.Second
)

// CachedToken is the bearer token currently held for upstream calls.
// It is replaced wholesale on refresh and never mutated in place.
type CachedToken struct {
	Value     string
	ExpiresAt time.Time
}

// ValidAt reports whether the token may still be handed out at now.
func (t CachedToken) ValidAt(now time.Time) bool {
	return t.Value != "" && now.Before(t.ExpiresAt)
}

// TokenRequestResult is the outcome of one client-credentials exchange.
// ExpiresInSeconds is the lifetime reported by the identity provider, already
// defaulted when the field was absent. Zero or negative means already expired.
type TokenRequestResult struct {
	AccessToken      string
	ExpiresInSeconds int
}

// CacheUntil folds an exchange result into a CachedToken, expiring it margin before the
// identity provider's own expiry. The result is already expired when margin reaches the lifetime.
func (r TokenRequestResult) CacheUntil(now time.Time, margin time.Duration) CachedToken {
	return CachedToken{
		Value:     r.AccessToken,
		ExpiresAt: now.Add(time.Duration(r.ExpiresInSeconds)*time.Second - margin),
	}
}
