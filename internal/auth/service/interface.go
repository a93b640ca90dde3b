// Package service provides the signing and hashing primitives behind gateway authentication.
package service

import (
	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
)

// TokenService issues and validates the gateway's own bearer tokens.
type TokenService interface {
	// Issue signs a token for subject. name is carried as a display claim.
	Issue(subject, name string) (*authDomain.IssuedToken, error)

	// Validate checks signature, issuer, audience and expiry and returns the caller.
	// Any failure is reported as ErrInvalidToken.
	Validate(token string) (*authDomain.Principal, error)
}

// PasswordService hashes and verifies login passwords.
type PasswordService interface {
	// Hash returns an Argon2id PHC string for password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. Malformed hashes never match.
	Compare(password, hash string) bool
}
