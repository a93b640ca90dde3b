package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
	"github.com/allisson/vehiclebff/internal/auth/usecase/mocks"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestLoginUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		next := &mocks.MockLoginUseCase{}
		m := &mockBusinessMetrics{}
		uc := NewLoginUseCaseWithMetrics(next, m)
		issued := &authDomain.IssuedToken{Token: "signed"}

		next.On("Login", ctx, "jane", "secret").Return(issued, nil).Once()
		m.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		m.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").Return().Once()

		token, err := uc.Login(ctx, "jane", "secret")
		assert.NoError(t, err)
		assert.Equal(t, issued, token)
		m.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		next := &mocks.MockLoginUseCase{}
		m := &mockBusinessMetrics{}
		uc := NewLoginUseCaseWithMetrics(next, m)

		next.On("Login", ctx, "jane", "wrong").Return(nil, authDomain.ErrInvalidCredentials).Once()
		m.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		m.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").Return().Once()

		_, err := uc.Login(ctx, "jane", "wrong")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		m.AssertExpectations(t)
	})
}
