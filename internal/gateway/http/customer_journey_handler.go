package http

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	"github.com/allisson/vehiclebff/internal/gateway/http/dto"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
	"github.com/allisson/vehiclebff/internal/httputil"
)

// CustomerJourneyHandler drives the step-by-step vehicle appraisal journey.
type CustomerJourneyHandler struct {
	gateway gatewayUseCase.GatewayUseCase
	logger  *slog.Logger
}

// NewCustomerJourneyHandler creates a new customer journey handler.
func NewCustomerJourneyHandler(gateway gatewayUseCase.GatewayUseCase, logger *slog.Logger) *CustomerJourneyHandler {
	return &CustomerJourneyHandler{gateway: gateway, logger: logger}
}

// GetHandler returns a journey by its UUID, or the journey of a visit when id is an integer.
// GET /api/v1/customer-journey/:id
func (h *CustomerJourneyHandler) GetHandler(c *gin.Context) {
	id := c.Param("id")

	if journeyID, err := uuid.Parse(id); err == nil {
		relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyByID, gatewayDomain.Input{
			Params: map[string]string{"id": journeyID.String()},
		})
		return
	}

	if visitID, err := strconv.ParseInt(id, 10, 64); err == nil {
		relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyByVisitID, gatewayDomain.Input{
			Params: map[string]string{"visitId": strconv.FormatInt(visitID, 10)},
		})
		return
	}

	httputil.HandleErrorGin(c,
		apperrors.Wrap(apperrors.ErrInvalidInput, "id must be a journey UUID or a numeric visit id"),
		h.logger)
}

// StartYMMHandler starts a journey from year, make and model.
// POST /api/v1/customer-journey
func (h *CustomerJourneyHandler) StartYMMHandler(c *gin.Context) {
	var req dto.StartJourneyYMMRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyYMM, gatewayDomain.Input{Body: req})
}

// StartVINHandler starts a journey from a VIN.
// POST /api/v1/customer-journey/vin
func (h *CustomerJourneyHandler) StartVINHandler(c *gin.Context) {
	var req dto.StartJourneyVINRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyVIN, gatewayDomain.Input{Body: req})
}

// StartPlateHandler starts a journey from a license plate.
// POST /api/v1/customer-journey/plate
func (h *CustomerJourneyHandler) StartPlateHandler(c *gin.Context) {
	var req dto.StartJourneyPlateRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyPlate, gatewayDomain.Input{Body: req})
}

// VehicleDetailsHandler updates the vehicle series and body style.
// POST /api/v1/customer-journey/:id/vehicle-details
func (h *CustomerJourneyHandler) VehicleDetailsHandler(c *gin.Context) {
	var req dto.VehicleDetailsRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyVehicleDetails, gatewayDomain.Input{
		Params: map[string]string{"id": c.Param("id")},
		Body:   req,
	})
}

// VehicleConditionHandler updates the vehicle condition.
// POST /api/v1/customer-journey/:id/vehicle-condition
func (h *CustomerJourneyHandler) VehicleConditionHandler(c *gin.Context) {
	var req dto.VehicleConditionRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyVehicleCondition, gatewayDomain.Input{
		Params: map[string]string{"id": c.Param("id")},
		Body:   req,
	})
}

// BodyWorkHandler updates the body work and history details.
// POST /api/v1/customer-journey/:id/body-work
func (h *CustomerJourneyHandler) BodyWorkHandler(c *gin.Context) {
	var req dto.BodyWorkRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyBodyWork, gatewayDomain.Input{
		Params: map[string]string{"id": c.Param("id")},
		Body:   req,
	})
}

// DamageOptionsHandler lists the damage zones, components and faults of a journey's vehicle.
// GET /api/v1/customer-journey/:id/damage/options
func (h *CustomerJourneyHandler) DamageOptionsHandler(c *gin.Context) {
	relay(c, h.gateway, h.logger, gatewayDomain.CustomerJourneyDamageOptions, gatewayDomain.Input{
		Params: map[string]string{"id": c.Param("id")},
	})
}
