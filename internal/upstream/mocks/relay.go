// Package mocks provides mock implementations of the upstream clients for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/vehiclebff/internal/upstream"
)

// MockRelay is a mock implementation of upstream.Relay for testing.
type MockRelay struct {
	mock.Mock
}

// Do mocks the Do method of Relay.
func (m *MockRelay) Do(ctx context.Context, call upstream.Call) (*upstream.Outcome, error) {
	args := m.Called(ctx, call)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.Outcome), args.Error(1)
}

// MockImageFetcher is a mock implementation of upstream.ImageFetcher for testing.
type MockImageFetcher struct {
	mock.Mock
}

// Fetch mocks the Fetch method of ImageFetcher.
func (m *MockImageFetcher) Fetch(ctx context.Context, rawURL string) (*upstream.Image, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.Image), args.Error(1)
}
