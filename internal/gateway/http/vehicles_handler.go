package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
	"github.com/allisson/vehiclebff/internal/httputil"
	"github.com/allisson/vehiclebff/internal/upstream"
)

// VehiclesHandler serves the year, make, model and trim lookups and the image proxy.
type VehiclesHandler struct {
	gateway gatewayUseCase.GatewayUseCase
	images  upstream.ImageFetcher
	logger  *slog.Logger
}

// NewVehiclesHandler creates a new vehicles handler.
func NewVehiclesHandler(
	gateway gatewayUseCase.GatewayUseCase,
	images upstream.ImageFetcher,
	logger *slog.Logger,
) *VehiclesHandler {
	return &VehiclesHandler{gateway: gateway, images: images, logger: logger}
}

// YearsHandler lists model years.
// GET /api/v1/vehicles/years
func (h *VehiclesHandler) YearsHandler(c *gin.Context) {
	writeList[int](c, h, gatewayDomain.VehicleYears, gatewayDomain.Input{})
}

// MakesHandler lists the makes of a model year.
// GET /api/v1/vehicles/makes/:year
func (h *VehiclesHandler) MakesHandler(c *gin.Context) {
	year, ok := intParam(c, "year", h.logger)
	if !ok {
		return
	}
	writeList[string](c, h, gatewayDomain.VehicleMakes, gatewayDomain.Input{
		Params: map[string]string{"year": year},
	})
}

// ModelsHandler lists the models of a make in a model year.
// GET /api/v1/vehicles/models/:year/:make
func (h *VehiclesHandler) ModelsHandler(c *gin.Context) {
	year, ok := intParam(c, "year", h.logger)
	if !ok {
		return
	}
	writeList[string](c, h, gatewayDomain.VehicleModels, gatewayDomain.Input{
		Params: map[string]string{"year": year, "make": c.Param("make")},
	})
}

// TrimsHandler lists the trims of a model.
// GET /api/v1/vehicles/trims/:year/:make/:model
func (h *VehiclesHandler) TrimsHandler(c *gin.Context) {
	year, ok := intParam(c, "year", h.logger)
	if !ok {
		return
	}
	relay(c, h.gateway, h.logger, gatewayDomain.VehicleTrims, gatewayDomain.Input{
		Params: map[string]string{"year": year, "make": c.Param("make"), "model": c.Param("model")},
	})
}

// ImageHandler streams a vehicle image from an absolute http(s) URL.
// GET /api/v1/vehicles/image?url=
func (h *VehiclesHandler) ImageHandler(c *gin.Context) {
	rawURL, ok := httputil.OptionalQuery(c, "url")
	if !ok {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "url is required"), h.logger)
		return
	}

	image, err := h.images.Fetch(c.Request.Context(), rawURL)
	if err != nil {
		if apperrors.Is(err, upstream.ErrInvalidImageURL) {
			err = apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer func() {
		_ = image.Body.Close()
	}()

	c.DataFromReader(http.StatusOK, image.ContentLength, image.ContentType, image.Body, nil)
}

// writeList relays op and writes its body as a typed list. A missing body becomes [].
func writeList[T any](c *gin.Context, h *VehiclesHandler, op gatewayDomain.Operation, in gatewayDomain.Input) {
	result, err := h.gateway.Execute(c.Request.Context(), op, in)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	list, err := gatewayUseCase.DecodeList[T](result)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(result.StatusCode, list)
}
