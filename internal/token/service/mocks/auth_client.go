// Package mocks provides mock implementations of the token services for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/vehiclebff/internal/token/domain"
)

// MockAuthClient is a mock implementation of AuthClient for testing.
type MockAuthClient struct {
	mock.Mock
}

// Exchange mocks the Exchange method of AuthClient.
func (m *MockAuthClient) Exchange(ctx context.Context) (*tokenDomain.TokenRequestResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.TokenRequestResult), args.Error(1)
}
