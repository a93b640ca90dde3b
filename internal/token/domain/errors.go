package domain

import (
	"fmt"

	"github.com/allisson/vehiclebff/internal/errors"
)

// TokenAcquisitionError reports that no usable upstream token could be obtained.
// The cause is kept for logging and never rendered to API callers.
type TokenAcquisitionError struct {
	Reason string
	Err    error
}

// NewTokenAcquisitionError builds a TokenAcquisitionError for reason, wrapping cause when present.
func NewTokenAcquisitionError(reason string, cause error) *TokenAcquisitionError {
	return &TokenAcquisitionError{Reason: reason, Err: cause}
}

func (e *TokenAcquisitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token acquisition failed: %s: %v", e.Reason, e.Err)
	}
	return "token acquisition failed: " + e.Reason
}

func (e *TokenAcquisitionError) Unwrap() error {
	return e.Err
}

// Is matches the ErrTokenAcquisition sentinel so HTTP mapping needs no knowledge of this type.
func (e *TokenAcquisitionError) Is(target error) bool {
	return target == errors.ErrTokenAcquisition
}

var (
	// ErrEmptyAccessToken indicates the identity provider answered without an access_token.
	ErrEmptyAccessToken = errors.New("identity provider returned an empty access_token")

	// ErrLifetimeTooShort indicates the token expires within the safety margin.
	ErrLifetimeTooShort = errors.New("access token lifetime does not exceed the safety margin")

	// ErrMissingCredentials indicates the client-credentials settings are incomplete.
	ErrMissingCredentials = errors.New("client credentials are not configured")
)
