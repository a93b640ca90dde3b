package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/vehiclebff/internal/auth/http/dto"
	authUseCase "github.com/allisson/vehiclebff/internal/auth/usecase"
	"github.com/allisson/vehiclebff/internal/httputil"
	customValidation "github.com/allisson/vehiclebff/internal/validation"
)

// LoginHandler handles HTTP requests for gateway token issuance.
type LoginHandler struct {
	loginUseCase authUseCase.LoginUseCase
	logger       *slog.Logger
}

// NewLoginHandler creates a new login handler with required dependencies.
func NewLoginHandler(loginUseCase authUseCase.LoginUseCase, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		loginUseCase: loginUseCase,
		logger:       logger,
	}
}

// LoginHandler issues a gateway token for the supplied credentials.
// POST /api/v1/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with token and expiration time.
func (h *LoginHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.loginUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token))
}
