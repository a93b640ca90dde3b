package service

import (
	"context"
	"time"

	"github.com/allisson/vehiclebff/internal/metrics"
	tokenDomain "github.com/allisson/vehiclebff/internal/token/domain"
)

// authClientWithMetrics decorates AuthClient with metrics instrumentation.
type authClientWithMetrics struct {
	next    AuthClient
	metrics metrics.BusinessMetrics
}

// NewAuthClientWithMetrics wraps an AuthClient with metrics recording.
func NewAuthClientWithMetrics(client AuthClient, m metrics.BusinessMetrics) AuthClient {
	return &authClientWithMetrics{
		next:    client,
		metrics: m,
	}
}

// Exchange records metrics for token endpoint exchanges.
func (a *authClientWithMetrics) Exchange(ctx context.Context) (*tokenDomain.TokenRequestResult, error) {
	start := time.Now()
	result, err := a.next.Exchange(ctx)

	metrics.Observe(ctx, a.metrics, metrics.DomainToken, "exchange", metrics.StatusFor(err), start)

	return result, err
}
