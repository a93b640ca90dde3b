// Package service provides the upstream token cache and the identity provider client
// that performs the OAuth2 client-credentials exchange.
package service

import (
	"context"
	"time"

	tokenDomain "github.com/allisson/vehiclebff/internal/token/domain"
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// AuthClient exchanges the configured client credentials for an upstream access token.
// It is stateless and only called on a token cache miss.
type AuthClient interface {
	// Exchange performs one client-credentials grant against the token endpoint.
	// Failures, including an empty access_token, are returned as *TokenAcquisitionError.
	Exchange(ctx context.Context) (*tokenDomain.TokenRequestResult, error)
}
