package usecase

import (
	"context"
	"time"

	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	"github.com/allisson/vehiclebff/internal/metrics"
)

// gatewayUseCaseWithMetrics decorates GatewayUseCase with metrics instrumentation.
type gatewayUseCaseWithMetrics struct {
	next    GatewayUseCase
	metrics metrics.BusinessMetrics
}

// NewGatewayUseCaseWithMetrics wraps a GatewayUseCase with metrics recording.
func NewGatewayUseCaseWithMetrics(useCase GatewayUseCase, m metrics.BusinessMetrics) GatewayUseCase {
	return &gatewayUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Execute records one upstream operation per call, labelled success, error or fallback.
func (g *gatewayUseCaseWithMetrics) Execute(
	ctx context.Context,
	op gatewayDomain.Operation,
	in gatewayDomain.Input,
) (*gatewayDomain.Result, error) {
	start := time.Now()
	result, err := g.next.Execute(ctx, op, in)

	status := metrics.StatusFor(err)
	if err == nil && result != nil && result.Fallback {
		status = metrics.StatusFallback
	}
	metrics.Observe(ctx, g.metrics, metrics.DomainUpstream, op.Name, status, start)

	return result, err
}
