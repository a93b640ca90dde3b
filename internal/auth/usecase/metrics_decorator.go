package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
	"github.com/allisson/vehiclebff/internal/metrics"
)

// loginUseCaseWithMetrics decorates LoginUseCase with metrics instrumentation.
type loginUseCaseWithMetrics struct {
	next    LoginUseCase
	metrics metrics.BusinessMetrics
}

// NewLoginUseCaseWithMetrics wraps a LoginUseCase with metrics recording.
func NewLoginUseCaseWithMetrics(useCase LoginUseCase, m metrics.BusinessMetrics) LoginUseCase {
	return &loginUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login attempts.
func (l *loginUseCaseWithMetrics) Login(
	ctx context.Context,
	username, password string,
) (*authDomain.IssuedToken, error) {
	start := time.Now()
	token, err := l.next.Login(ctx, username, password)

	metrics.Observe(ctx, l.metrics, metrics.DomainAuth, "login", metrics.StatusFor(err), start)

	return token, err
}
