package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	"github.com/allisson/vehiclebff/internal/gateway/http/dto"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
)

// AppointmentHandler handles appointment availability, booking and cancellation.
type AppointmentHandler struct {
	gateway gatewayUseCase.GatewayUseCase
	logger  *slog.Logger
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(gateway gatewayUseCase.GatewayUseCase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{gateway: gateway, logger: logger}
}

// AvailabilityHandler lists open appointment slots near a zip code.
// GET /api/v1/appointment/availability/:zipCode/:customerVehicleId
func (h *AppointmentHandler) AvailabilityHandler(c *gin.Context) {
	customerVehicleID, ok := intParam(c, "customerVehicleId", h.logger)
	if !ok {
		return
	}

	relay(c, h.gateway, h.logger, gatewayDomain.AppointmentAvailability, gatewayDomain.Input{
		Params: map[string]string{
			"zipCode":           c.Param("zipCode"),
			"customerVehicleId": customerVehicleID,
		},
	})
}

// BookHandler books an appointment. The OTP code, when present, is forwarded as-is.
// POST /api/v1/appointment/book
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	var req dto.BookAppointmentRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}

	relay(c, h.gateway, h.logger, gatewayDomain.AppointmentBook, gatewayDomain.Input{
		Body: req.ToUpstream(),
	})
}

// RescheduleHandler moves an existing appointment.
// POST /api/v1/appointment/:existingAppointmentId/reschedule
func (h *AppointmentHandler) RescheduleHandler(c *gin.Context) {
	appointmentID, ok := intParam(c, "existingAppointmentId", h.logger)
	if !ok {
		return
	}

	var req dto.BookAppointmentRequest
	if !bindRequest(c, &req, h.logger) {
		return
	}

	relay(c, h.gateway, h.logger, gatewayDomain.AppointmentReschedule, gatewayDomain.Input{
		Params: map[string]string{"existingAppointmentId": appointmentID},
		Body:   req.ToUpstream(),
	})
}

// CancelHandler cancels the appointment of a customer vehicle.
// POST /api/v1/appointment/cancel/:customerVehicleId/:phoneNumber
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	customerVehicleID, ok := intParam(c, "customerVehicleId", h.logger)
	if !ok {
		return
	}
	phoneNumber, ok := intParam(c, "phoneNumber", h.logger)
	if !ok {
		return
	}

	relay(c, h.gateway, h.logger, gatewayDomain.AppointmentCancel, gatewayDomain.Input{
		Params: map[string]string{
			"customerVehicleId": customerVehicleID,
			"phoneNumber":       phoneNumber,
		},
	})
}
