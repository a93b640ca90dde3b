package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/vehiclebff/internal/auth/domain"
	apperrors "github.com/allisson/vehiclebff/internal/errors"
)

// JWTConfig holds the signing parameters of gateway tokens.
type JWTConfig struct {
	SecretKey  []byte
	Issuer     string
	Audience   string
	Expiration time.Duration
}

type gatewayClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type jwtService struct {
	cfg    JWTConfig
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService creates an HS256 TokenService. A nil now uses time.Now.
func NewJWTService(cfg JWTConfig, now func() time.Time) (TokenService, error) {
	if len(cfg.SecretKey) == 0 {
		return nil, errors.New("jwt secret key is required")
	}
	if cfg.Expiration <= 0 {
		return nil, errors.New("jwt expiration must be positive")
	}
	if now == nil {
		now = time.Now
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(now),
	)

	return &jwtService{cfg: cfg, now: now, parser: parser}, nil
}

func (s *jwtService) Issue(subject, name string) (*authDomain.IssuedToken, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate token id")
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.Expiration)
	claims := gatewayClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.SecretKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &authDomain.IssuedToken{Token: signed, ExpiresAt: expiresAt.UTC().Truncate(time.Second)}, nil
}

func (s *jwtService) Validate(raw string) (*authDomain.Principal, error) {
	claims := &gatewayClaims{}
	token, err := s.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.cfg.SecretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", authDomain.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", authDomain.ErrInvalidToken)
	}

	return &authDomain.Principal{
		Subject:   claims.Subject,
		Name:      claims.Name,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
