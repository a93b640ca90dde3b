// Package usecase implements the relay shared by every gateway operation.
package usecase

import (
	"context"

	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
)

// GatewayUseCase relays an operation to the upstream API.
type GatewayUseCase interface {
	// Execute forwards the call and returns the upstream body with the operation's success
	// status. When fallback data is enabled, an upstream or token failure is replaced by the
	// operation's fixture. Other failures are returned unchanged.
	Execute(ctx context.Context, op gatewayDomain.Operation, in gatewayDomain.Input) (*gatewayDomain.Result, error)
}
