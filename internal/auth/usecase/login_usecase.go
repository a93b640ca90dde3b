package usecase

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
	authService "github.com/allisson/vehiclebff/internal/auth/service"
)

// LoginConfig restricts login to one user when both fields are set.
type LoginConfig struct {
	Username     string
	PasswordHash string
}

type loginUseCase struct {
	tokens    authService.TokenService
	passwords authService.PasswordService
	cfg       LoginConfig
	logger    *slog.Logger
}

// NewLoginUseCase creates a LoginUseCase.
func NewLoginUseCase(
	tokens authService.TokenService,
	passwords authService.PasswordService,
	cfg LoginConfig,
	logger *slog.Logger,
) LoginUseCase {
	return &loginUseCase{
		tokens:    tokens,
		passwords: passwords,
		cfg:       cfg,
		logger:    logger,
	}
}

func (l *loginUseCase) Login(ctx context.Context, username, password string) (*authDomain.IssuedToken, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, authDomain.ErrMissingCredentials
	}

	if l.restricted() {
		// Both checks always run so a wrong username costs as much as a wrong password.
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(l.cfg.Username)) == 1
		passOK := l.passwords.Compare(password, l.cfg.PasswordHash)
		if !userOK || !passOK {
			l.logger.WarnContext(ctx, "login rejected", slog.String("username", username))
			return nil, authDomain.ErrInvalidCredentials
		}
	}

	token, err := l.tokens.Issue(username, username)
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "gateway token issued",
		slog.String("subject", username),
		slog.Time("expires_at", token.ExpiresAt),
	)
	return token, nil
}

func (l *loginUseCase) restricted() bool {
	return l.cfg.Username != "" || l.cfg.PasswordHash != ""
}
