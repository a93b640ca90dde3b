package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	authService "github.com/allisson/vehiclebff/internal/auth/service"
)

// RunIssueToken mints a gateway token for subject without going through login.
// Intended for operators and service-to-service callers.
func RunIssueToken(
	tokens authService.TokenService,
	logger *slog.Logger,
	writer io.Writer,
	subject string,
	name string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	subject = strings.TrimSpace(subject)
	if subject == "" {
		return fmt.Errorf("subject is required")
	}
	if name == "" {
		name = subject
	}

	issued, err := tokens.Issue(subject, name)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("gateway token issued",
		slog.String("subject", subject),
		slog.Time("expires_at", issued.ExpiresAt),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"token":      issued.Token,
			"expires_at": issued.ExpiresAt.Format(time.RFC3339),
		})
	}

	_, err = fmt.Fprintf(writer, "Token: %s\nExpires at: %s\n", issued.Token, issued.ExpiresAt.Format(time.RFC3339))
	return err
}
