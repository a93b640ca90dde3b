// Package mocks provides a mock TokenProvider for testing upstream callers.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTokenProvider is a mock implementation of TokenProvider for testing.
type MockTokenProvider struct {
	mock.Mock
}

// GetAccessToken mocks the GetAccessToken method of TokenProvider.
func (m *MockTokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Invalidate mocks the Invalidate method of TokenProvider.
func (m *MockTokenProvider) Invalidate(token string) {
	m.Called(token)
}

// ExpiresAt mocks the ExpiresAt method of TokenProvider.
func (m *MockTokenProvider) ExpiresAt() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
