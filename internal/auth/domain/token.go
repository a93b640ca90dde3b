// Package domain defines the gateway's own caller identities and tokens.
package domain

import (
	"time"
)

// Principal is the caller identified by a validated gateway token.
type Principal struct {
	Subject   string
	Name      string
	TokenID   string
	ExpiresAt time.Time
}

// IssuedToken is a signed gateway token handed to a caller.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}
