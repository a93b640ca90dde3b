package service

import (
	"sync"
	"time"

	tokenDomain "github.com/allisson/vehiclebff/internal/token/domain"
)

// TokenCache is a single-slot, process-wide holder of the current upstream token.
// Reads take a shared lock so a valid token never waits on a refresh.
type TokenCache struct {
	mu    sync.RWMutex
	token tokenDomain.CachedToken
	now   Clock
}

// NewTokenCache creates an empty cache. A nil clock uses time.Now.
func NewTokenCache(clock Clock) *TokenCache {
	if clock == nil {
		clock = time.Now
	}
	return &TokenCache{now: clock}
}

// Get returns the cached token value when it is still valid.
func (c *TokenCache) Get() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.token.ValidAt(c.now()) {
		return "", false
	}
	return c.token.Value, true
}

// Set replaces the cached token.
func (c *TokenCache) Set(token tokenDomain.CachedToken) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

// ClearIf drops the cached token when it still holds value, so the next Get misses.
// A token stored after value was handed out is kept. Reports whether it cleared.
func (c *TokenCache) ClearIf(value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.Value == "" || c.token.Value != value {
		return false
	}
	c.token = tokenDomain.CachedToken{}
	return true
}

// ExpiresAt returns the expiry of the cached token, or the zero time when empty.
func (c *TokenCache) ExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token.ExpiresAt
}

// Now reads the cache clock.
func (c *TokenCache) Now() time.Time {
	return c.now()
}
