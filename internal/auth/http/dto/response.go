package dto

import (
	"time"

	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
)

// LoginResponse contains the issued gateway token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapTokenToResponse converts an issued token to an API response.
func MapTokenToResponse(token *authDomain.IssuedToken) LoginResponse {
	return LoginResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}
}
