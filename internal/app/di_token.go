package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/allisson/vehiclebff/internal/httputil"
	"github.com/allisson/vehiclebff/internal/secrets"
	tokenService "github.com/allisson/vehiclebff/internal/token/service"
	tokenUseCase "github.com/allisson/vehiclebff/internal/token/usecase"
)

// AuthClient returns the identity provider client for the client-credentials exchange.
func (c *Container) AuthClient() (tokenService.AuthClient, error) {
	var err error
	c.authClientInit.Do(func() {
		c.authClient, err = c.initAuthClient()
		if err != nil {
			c.setInitError("authClient", err)
		}
	})
	if storedErr := c.initError("authClient"); storedErr != nil {
		return nil, storedErr
	}
	return c.authClient, nil
}

// TokenProvider returns the process-wide upstream token provider.
func (c *Container) TokenProvider() (tokenUseCase.TokenProvider, error) {
	var err error
	c.tokenProviderInit.Do(func() {
		c.tokenProvider, err = c.initTokenProvider()
		if err != nil {
			c.setInitError("tokenProvider", err)
		}
	})
	if storedErr := c.initError("tokenProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.tokenProvider, nil
}

// meterProvider returns the meter provider for outbound instrumentation, or nil when metrics are off.
func (c *Container) meterProvider() (metric.MeterProvider, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return provider.MeterProvider(), nil
}

// initAuthClient creates the client-credentials client, decrypting the client secret
// when a secrets keeper is configured.
func (c *Container) initAuthClient() (tokenService.AuthClient, error) {
	if err := c.config.ValidateIdentity(); err != nil {
		return nil, err
	}

	clientSecret, err := secrets.ResolveSecret(
		context.Background(),
		c.config.SecretsKeeperURI,
		c.config.IdentityClientSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity client secret: %w", err)
	}

	mp, err := c.meterProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get meter provider for auth client: %w", err)
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for auth client: %w", err)
	}

	client := tokenService.NewAuthClient(tokenService.ClientCredentials{
		AuthorityURL: c.config.IdentityAuthorityURL,
		TenantID:     c.config.IdentityTenantID,
		ClientID:     c.config.IdentityClientID,
		ClientSecret: clientSecret,
		Scope:        c.config.IdentityScope,
	}, httputil.NewOutboundClient(c.config.IdentityTimeout, mp, "identity"))

	return tokenService.NewAuthClientWithMetrics(client, bm), nil
}

// initTokenProvider creates the token provider with its single-slot cache.
func (c *Container) initTokenProvider() (tokenUseCase.TokenProvider, error) {
	client, err := c.AuthClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client for token provider: %w", err)
	}

	return tokenUseCase.NewTokenProvider(
		client,
		tokenService.NewTokenCache(nil),
		c.config.TokenSafetyMargin,
		c.Logger(),
	), nil
}
