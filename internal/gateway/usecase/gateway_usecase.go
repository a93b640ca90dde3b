package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
	"github.com/allisson/vehiclebff/internal/fallback"
	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	"github.com/allisson/vehiclebff/internal/upstream"
)

type gatewayUseCase struct {
	relay           upstream.Relay
	fixtures        fallback.Store
	fallbackEnabled bool
	logger          *slog.Logger
}

// NewGatewayUseCase creates a GatewayUseCase. fixtures is consulted only when fallbackEnabled is set.
func NewGatewayUseCase(
	relay upstream.Relay,
	fixtures fallback.Store,
	fallbackEnabled bool,
	logger *slog.Logger,
) GatewayUseCase {
	return &gatewayUseCase{
		relay:           relay,
		fixtures:        fixtures,
		fallbackEnabled: fallbackEnabled,
		logger:          logger,
	}
}

func (g *gatewayUseCase) Execute(
	ctx context.Context,
	op gatewayDomain.Operation,
	in gatewayDomain.Input,
) (*gatewayDomain.Result, error) {
	path, err := op.ExpandPath(in.Params)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}

	outcome, err := g.relay.Do(ctx, upstream.Call{
		Operation: op.Name,
		Method:    op.Method,
		Path:      path,
		Query:     in.Query,
		Body:      in.Body,
	})
	if err == nil {
		return &gatewayDomain.Result{StatusCode: op.SuccessStatus, Body: outcome.Body}, nil
	}

	if result, ok := g.fallback(op, err); ok {
		return result, nil
	}
	return nil, apperrors.Wrap(err, op.Name)
}

// fallback serves the operation's fixture for upstream and token failures.
func (g *gatewayUseCase) fallback(op gatewayDomain.Operation, err error) (*gatewayDomain.Result, bool) {
	if !g.fallbackEnabled || g.fixtures == nil {
		return nil, false
	}
	if !apperrors.Is(err, apperrors.ErrUpstream) && !apperrors.Is(err, apperrors.ErrTokenAcquisition) {
		return nil, false
	}

	payload, ok := g.fixtures.Lookup(op.FallbackKey)
	if !ok {
		return nil, false
	}

	g.logger.Warn("serving fallback data",
		slog.String("operation", op.Name),
		slog.String("fixture", op.FallbackKey),
		slog.Any("error", err),
	)
	return &gatewayDomain.Result{StatusCode: op.SuccessStatus, Body: payload, Fallback: true}, true
}
