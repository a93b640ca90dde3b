package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
	tokenDomain "github.com/allisson/vehiclebff/internal/token/domain"
	tokenService "github.com/allisson/vehiclebff/internal/token/service"
	serviceMocks "github.com/allisson/vehiclebff/internal/token/service/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// gatedAuthClient blocks every exchange until release is closed and counts invocations.
type gatedAuthClient struct {
	calls   int32
	release chan struct{}
	token   string
}

func (g *gatedAuthClient) Exchange(ctx context.Context) (*tokenDomain.TokenRequestResult, error) {
	atomic.AddInt32(&g.calls, 1)
	<-g.release
	return &tokenDomain.TokenRequestResult{AccessToken: g.token, ExpiresInSeconds: 3600}, nil
}

func TestTokenProvider_GetAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CacheHitSkipsExchange", func(t *testing.T) {
		clock := newFakeClock()
		cache := tokenService.NewTokenCache(clock.Now)
		cache.Set(tokenDomain.CachedToken{Value: "seeded", ExpiresAt: clock.Now().Add(time.Hour)})
		mockClient := &serviceMocks.MockAuthClient{}

		provider := NewTokenProvider(mockClient, cache, tokenDomain.DefaultSafetyMargin, nil)

		for i := 0; i < 2; i++ {
			token, err := provider.GetAccessToken(ctx)
			require.NoError(t, err)
			assert.Equal(t, "seeded", token)
		}
		mockClient.AssertNotCalled(t, "Exchange", mock.Anything)
	})

	t.Run("Success_CacheMissExchangesOnce", func(t *testing.T) {
		clock := newFakeClock()
		cache := tokenService.NewTokenCache(clock.Now)
		mockClient := &serviceMocks.MockAuthClient{}
		mockClient.On("Exchange", mock.Anything).
			Return(&tokenDomain.TokenRequestResult{AccessToken: "fresh", ExpiresInSeconds: 3600}, nil).
			Once()

		provider := NewTokenProvider(mockClient, cache, tokenDomain.DefaultSafetyMargin, nil)

		token, err := provider.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fresh", token)

		token, err = provider.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fresh", token)

		mockClient.AssertNumberOfCalls(t, "Exchange", 1)
		assert.Equal(t, clock.Now().Add(3300*time.Second), provider.ExpiresAt())
	})

	t.Run("Success_SafetyMarginForcesRefresh", func(t *testing.T) {
		clock := newFakeClock()
		cache := tokenService.NewTokenCache(clock.Now)
		mockClient := &serviceMocks.MockAuthClient{}
		mockClient.On("Exchange", mock.Anything).
			Return(&tokenDomain.TokenRequestResult{AccessToken: "first", ExpiresInSeconds: 3600}, nil).
			Once()
		mockClient.On("Exchange", mock.Anything).
			Return(&tokenDomain.TokenRequestResult{AccessToken: "second", ExpiresInSeconds: 3600}, nil).
			Once()

		provider := NewTokenProvider(mockClient, cache, tokenDomain.DefaultSafetyMargin, nil)

		token, err := provider.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "first", token)

		clock.Advance(3299 * time.Second)
		token, err = provider.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "first", token)
		mockClient.AssertNumberOfCalls(t, "Exchange", 1)

		clock.Advance(2 * time.Second)
		token, err = provider.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "second", token)
		mockClient.AssertNumberOfCalls(t, "Exchange", 2)
	})

	t.Run("Error_LifetimeInsideMarginIsRejectedAndNotCached", func(t *testing.T) {
		clock := newFakeClock()
		cache := tokenService.NewTokenCache(clock.Now)
		mockClient := &serviceMocks.MockAuthClient{}
		mockClient.On("Exchange", mock.Anything).
			Return(&tokenDomain.TokenRequestResult{AccessToken: "short", ExpiresInSeconds: 120}, nil).
			Times(3)

		provider := NewTokenProvider(mockClient, cache, tokenDomain.DefaultSafetyMargin, nil)

		for i := 0; i < 3; i++ {
			token, err := provider.GetAccessToken(ctx)
			require.Error(t, err)
			assert.Empty(t, token)
			assert.True(t, apperrors.Is(err, apperrors.ErrTokenAcquisition))
			assert.ErrorIs(t, err, tokenDomain.ErrLifetimeTooShort)
		}

		_, cached := cache.Get()
		assert.False(t, cached)
		assert.True(t, provider.ExpiresAt().IsZero())
		mockClient.AssertNumberOfCalls(t, "Exchange", 3)
	})

	t.Run("Error_ExpiredLifetimeIsRejected", func(t *testing.T) {
		for _, lifetime := range []int{0, -60} {
			clock := newFakeClock()
			cache := tokenService.NewTokenCache(clock.Now)
			mockClient := &serviceMocks.MockAuthClient{}
			mockClient.On("Exchange", mock.Anything).
				Return(&tokenDomain.TokenRequestResult{AccessToken: "stale", ExpiresInSeconds: lifetime}, nil).
				Once()

			provider := NewTokenProvider(mockClient, cache, 0, nil)

			token, err := provider.GetAccessToken(ctx)
			require.Error(t, err)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, tokenDomain.ErrLifetimeTooShort)

			_, cached := cache.Get()
			assert.False(t, cached)
		}
	})

	t.Run("Error_EmptyTokenIsRejectedAndNotCached", func(t *testing.T) {
		clock := newFakeClock()
		cache := tokenService.NewTokenCache(clock.Now)
		mockClient := &serviceMocks.MockAuthClient{}
		mockClient.On("Exchange", mock.Anything).
			Return(&tokenDomain.TokenRequestResult{AccessToken: "", ExpiresInSeconds: 3600}, nil).
			Once()
		mockClient.On("Exchange", mock.Anything).
			Return(&tokenDomain.TokenRequestResult{AccessToken: "good", ExpiresInSeconds: 3600}, nil).
			Once()

		provider := NewTokenProvider(mockClient, cache, tokenDomain.DefaultSafetyMargin, nil)

		token, err := provider.GetAccessToken(ctx)
		require.Error(t, err)
		assert.Empty(t, token)
		var acqErr *tokenDomain.TokenAcquisitionError
		assert.ErrorAs(t, err, &acqErr)
		assert.True(t, apperrors.Is(err, apperrors.ErrTokenAcquisition))

		_, cached := cache.Get()
		assert.False(t, cached)

		token, err = provider.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "good", token)
		mockClient.AssertNumberOfCalls(t, "Exchange", 2)
	})

	t.Run("Error_ExchangeFailureIsRetriedOnNextCall", func(t *testing.T) {
		cache := tokenService.NewTokenCache(nil)
		mockClient := &serviceMocks.MockAuthClient{}
		mockClient.On("Exchange", mock.Anything).
			Return(nil, errors.New("dial tcp: connection refused")).
			Twice()

		provider := NewTokenProvider(mockClient, cache, tokenDomain.DefaultSafetyMargin, nil)

		for i := 0; i < 2; i++ {
			_, err := provider.GetAccessToken(ctx)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrTokenAcquisition))
		}
		mockClient.AssertNumberOfCalls(t, "Exchange", 2)
	})

	t.Run("Success_InvalidateForcesExchange", func(t *testing.T) {
		cache := tokenService.NewTokenCache(nil)
		cache.Set(tokenDomain.CachedToken{Value: "revoked", ExpiresAt: time.Now().Add(time.Hour)})
		mockClient := &serviceMocks.MockAuthClient{}
		mockClient.On("Exchange", mock.Anything).
			Return(&tokenDomain.TokenRequestResult{AccessToken: "replacement", ExpiresInSeconds: 3600}, nil).
			Once()

		provider := NewTokenProvider(mockClient, cache, tokenDomain.DefaultSafetyMargin, nil)
		provider.Invalidate("revoked")

		token, err := provider.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "replacement", token)
		mockClient.AssertExpectations(t)
	})

	t.Run("Success_InvalidateKeepsNewerToken", func(t *testing.T) {
		cache := tokenService.NewTokenCache(nil)
		cache.Set(tokenDomain.CachedToken{Value: "refreshed", ExpiresAt: time.Now().Add(time.Hour)})
		mockClient := &serviceMocks.MockAuthClient{}

		provider := NewTokenProvider(mockClient, cache, tokenDomain.DefaultSafetyMargin, nil)
		provider.Invalidate("rejected")

		token, err := provider.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "refreshed", token)
		mockClient.AssertNotCalled(t, "Exchange", mock.Anything)
	})
}

func TestTokenProvider_ConcurrentMissesShareOneExchange(t *testing.T) {
	client := &gatedAuthClient{release: make(chan struct{}), token: "shared"}
	provider := NewTokenProvider(client, tokenService.NewTokenCache(nil), tokenDomain.DefaultSafetyMargin, nil)

	const callers = 20
	results := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = provider.GetAccessToken(context.Background())
		}(i)
	}

	// Let every caller reach the cache miss before the exchange completes.
	time.Sleep(50 * time.Millisecond)
	close(client.release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&client.calls))
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
}

func TestTokenProvider_CallerCancellation(t *testing.T) {
	client := &gatedAuthClient{release: make(chan struct{}), token: "late"}
	provider := NewTokenProvider(client, tokenService.NewTokenCache(nil), tokenDomain.DefaultSafetyMargin, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := provider.GetAccessToken(ctx)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	// The abandoned exchange still completes and fills the cache.
	close(client.release)
	token, err := provider.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.calls))
}
