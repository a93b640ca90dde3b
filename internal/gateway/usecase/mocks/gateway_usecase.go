// Package mocks provides a mock GatewayUseCase for handler tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
)

// MockGatewayUseCase is a mock implementation of GatewayUseCase for testing.
type MockGatewayUseCase struct {
	mock.Mock
}

// Execute mocks the Execute method of GatewayUseCase.
func (m *MockGatewayUseCase) Execute(
	ctx context.Context,
	op gatewayDomain.Operation,
	in gatewayDomain.Input,
) (*gatewayDomain.Result, error) {
	args := m.Called(ctx, op, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gatewayDomain.Result), args.Error(1)
}
