package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/vehiclebff/internal/auth/service"
	apperrors "github.com/allisson/vehiclebff/internal/errors"
	"github.com/allisson/vehiclebff/internal/httputil"
)

// AuthenticationMiddleware requires a valid gateway token in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive prefix)
// 2. Validates signature, issuer, audience and expiry with the TokenService
// 3. Stores the caller in the request context for GetPrincipal
//
// Missing, malformed, invalid or expired tokens all produce 401 Unauthorized.
func AuthenticationMiddleware(tokens authService.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.AbortWithErrorGin(c, apperrors.ErrUnauthorized, logger)
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.AbortWithErrorGin(c, apperrors.ErrUnauthorized, logger)
			return
		}

		raw := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if raw == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.AbortWithErrorGin(c, apperrors.ErrUnauthorized, logger)
			return
		}

		principal, err := tokens.Validate(raw)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.AbortWithErrorGin(c, err, logger)
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		logger.Debug("authentication successful", slog.String("subject", principal.Subject))

		c.Next()
	}
}
