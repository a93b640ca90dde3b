package domain

import (
	"github.com/allisson/vehiclebff/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials indicates the login username or password did not match.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken indicates a bearer token that is malformed, expired or not ours.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrMissingCredentials indicates a login request without username or password.
	ErrMissingCredentials = errors.Wrap(errors.ErrInvalidInput, "username and password are required")
)
