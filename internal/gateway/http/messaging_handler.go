package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	"github.com/allisson/vehiclebff/internal/gateway/http/dto"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
)

// MessagingHandler sends SMS messages and one-time scheduling codes.
type MessagingHandler struct {
	gateway gatewayUseCase.GatewayUseCase
	logger  *slog.Logger
}

// NewMessagingHandler creates a new messaging handler.
func NewMessagingHandler(gateway gatewayUseCase.GatewayUseCase, logger *slog.Logger) *MessagingHandler {
	return &MessagingHandler{gateway: gateway, logger: logger}
}

// SendSmsHandler sends an SMS. The body is forwarded without schema checks.
// POST /api/v1/sms/send
func (h *MessagingHandler) SendSmsHandler(c *gin.Context) {
	body, ok := bindRawJSON(c, h.logger)
	if !ok {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.SmsSend, gatewayDomain.Input{Body: body})
}

// RequestOTPHandler asks upstream to text a one-time code used later when booking.
// POST /api/v1/scheduling/otp/request
// Returns 202 Accepted.
func (h *MessagingHandler) RequestOTPHandler(c *gin.Context) {
	var req dto.OTPRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.SchedulingOTPRequest, gatewayDomain.Input{Body: req})
}
