package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
)

// ValuationHandler requests vehicle valuations.
type ValuationHandler struct {
	gateway gatewayUseCase.GatewayUseCase
	logger  *slog.Logger
}

// NewValuationHandler creates a new valuation handler.
func NewValuationHandler(gateway gatewayUseCase.GatewayUseCase, logger *slog.Logger) *ValuationHandler {
	return &ValuationHandler{gateway: gateway, logger: logger}
}

// CreateHandler requests a valuation. The body is forwarded without schema checks.
// POST /api/v1/valuation
func (h *ValuationHandler) CreateHandler(c *gin.Context) {
	h.forward(c, gatewayDomain.Valuation)
}

// CreateWithDamageHandler requests a valuation that accounts for reported damage.
// POST /api/v1/valuation/with-damage
func (h *ValuationHandler) CreateWithDamageHandler(c *gin.Context) {
	h.forward(c, gatewayDomain.ValuationWithDamage)
}

func (h *ValuationHandler) forward(c *gin.Context, op gatewayDomain.Operation) {
	body, ok := bindRawJSON(c, h.logger)
	if !ok {
		return
	}
	relay(c, h.gateway, h.logger, op, gatewayDomain.Input{Body: body})
}
