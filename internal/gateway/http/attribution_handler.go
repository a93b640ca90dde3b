package http

import (
	"log/slog"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
	"github.com/allisson/vehiclebff/internal/httputil"
)

// AttributionHandler tracks visitors and their visits.
type AttributionHandler struct {
	gateway gatewayUseCase.GatewayUseCase
	logger  *slog.Logger
}

// NewAttributionHandler creates a new attribution handler.
func NewAttributionHandler(gateway gatewayUseCase.GatewayUseCase, logger *slog.Logger) *AttributionHandler {
	return &AttributionHandler{gateway: gateway, logger: logger}
}

// VisitorHandler returns the visitor identified by oldVisitorId, or creates a new one.
// POST /api/v1/attribution/visitor?oldVisitorId=
// Returns 200 for an existing visitor and 201 for a new one.
func (h *AttributionHandler) VisitorHandler(c *gin.Context) {
	oldVisitorID, supplied, err := httputil.ParseOptionalInt(c, "oldVisitorId")
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error()), h.logger)
		return
	}

	if !supplied {
		relay(c, h.gateway, h.logger, gatewayDomain.AttributionVisitorCreate, gatewayDomain.Input{})
		return
	}

	relay(c, h.gateway, h.logger, gatewayDomain.AttributionVisitorLookup, gatewayDomain.Input{
		Query: url.Values{"oldVisitorId": []string{strconv.Itoa(oldVisitorID)}},
	})
}

// VisitHandler records a visit for a visitor. The body is forwarded without schema checks.
// POST /api/v1/attribution/visitor/:visitorId/visit
func (h *AttributionHandler) VisitHandler(c *gin.Context) {
	visitorID, ok := intParam(c, "visitorId", h.logger)
	if !ok {
		return
	}

	body, ok := bindRawJSON(c, h.logger)
	if !ok {
		return
	}

	relay(c, h.gateway, h.logger, gatewayDomain.AttributionVisit, gatewayDomain.Input{
		Params: map[string]string{"visitorId": visitorID},
		Body:   body,
	})
}
