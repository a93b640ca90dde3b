// Package usecase implements the gateway login flow.
package usecase

import (
	"context"

	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
)

// LoginUseCase exchanges login credentials for a gateway token.
type LoginUseCase interface {
	// Login returns a signed token for username. Blank credentials fail with ErrMissingCredentials.
	// When a login user is configured, any other username or password fails with
	// ErrInvalidCredentials. Otherwise every non-blank pair is accepted.
	Login(ctx context.Context, username, password string) (*authDomain.IssuedToken, error)
}
