package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	tokenUseCase "github.com/allisson/vehiclebff/internal/token/usecase"
)

// RunUpstreamToken acquires an upstream access token with the configured identity settings
// and reports when it expires. Only a short prefix of the token is printed.
func RunUpstreamToken(
	ctx context.Context,
	provider tokenUseCase.TokenProvider,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	token, err := provider.GetAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire upstream token: %w", err)
	}

	expiresAt := provider.ExpiresAt().UTC()
	logger.Info("upstream token acquired", slog.Time("expires_at", expiresAt))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"token_prefix": maskToken(token),
			"expires_at":   expiresAt.Format(time.RFC3339),
		})
	}

	_, err = fmt.Fprintf(writer, "Upstream token acquired: %s\nCached until: %s\n",
		maskToken(token), expiresAt.Format(time.RFC3339))
	return err
}

// maskToken keeps the first characters of a token so operators can tell tokens apart.
func maskToken(token string) string {
	const visible = 8
	if len(token) <= visible {
		return "***"
	}
	return token[:visible] + "..."
}
