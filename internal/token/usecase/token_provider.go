package usecase

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/allisson/vehiclebff/internal/errors"
	tokenDomain "github.com/allisson/vehiclebff/internal/token/domain"
	tokenService "github.com/allisson/vehiclebff/internal/token/service"
)

const flightKey = "upstream-token"

// tokenProvider composes the token cache and the identity provider client.
type tokenProvider struct {
	client tokenService.AuthClient
	cache  *tokenService.TokenCache
	margin time.Duration
	flight singleflight.Group
	logger *slog.Logger
}

// NewTokenProvider creates a TokenProvider caching tokens for their lifetime minus margin.
func NewTokenProvider(
	client tokenService.AuthClient,
	cache *tokenService.TokenCache,
	margin time.Duration,
	logger *slog.Logger,
) TokenProvider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &tokenProvider{
		client: client,
		cache:  cache,
		margin: margin,
		logger: logger,
	}
}

func (p *tokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	if value, ok := p.cache.Get(); ok {
		p.logger.Debug("upstream token cache hit")
		return value, nil
	}

	// The exchange outlives a caller that gives up so the remaining waiters still get a token.
	ch := p.flight.DoChan(flightKey, func() (any, error) {
		if value, ok := p.cache.Get(); ok {
			return value, nil
		}
		return p.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (p *tokenProvider) refresh(ctx context.Context) (string, error) {
	result, err := p.client.Exchange(ctx)
	if err != nil {
		p.logger.Error("upstream token exchange failed", slog.Any("error", err))
		if !errors.Is(err, errors.ErrTokenAcquisition) {
			err = tokenDomain.NewTokenAcquisitionError("exchange failed", err)
		}
		return "", err
	}
	if result == nil || result.AccessToken == "" {
		p.logger.Error("upstream token exchange returned an empty token")
		return "", tokenDomain.NewTokenAcquisitionError("empty access token", tokenDomain.ErrEmptyAccessToken)
	}

	now := p.cache.Now()
	cached := result.CacheUntil(now, p.margin)
	if !cached.ValidAt(now) {
		p.logger.Error("upstream token expires within the safety margin",
			slog.Int("expires_in", result.ExpiresInSeconds),
			slog.Duration("margin", p.margin),
		)
		return "", tokenDomain.NewTokenAcquisitionError("token lifetime too short", tokenDomain.ErrLifetimeTooShort)
	}
	p.cache.Set(cached)

	p.logger.Info("upstream token acquired",
		slog.Int("expires_in", result.ExpiresInSeconds),
		slog.Time("cached_until", cached.ExpiresAt),
	)
	return cached.Value, nil
}

func (p *tokenProvider) Invalidate(token string) {
	if p.cache.ClearIf(token) {
		p.logger.Info("upstream token invalidated")
	}
}

func (p *tokenProvider) ExpiresAt() time.Time {
	return p.cache.ExpiresAt()
}
