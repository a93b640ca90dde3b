// Package http provides the gateway's feature handlers. Every handler validates its input,
// relays one upstream operation and writes the result unchanged.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
	"github.com/allisson/vehiclebff/internal/httputil"
	customValidation "github.com/allisson/vehiclebff/internal/validation"
)

const jsonContentType = "application/json; charset=utf-8"

type validatable interface {
	Validate() error
}

// relay executes op and writes its result.
func relay(
	c *gin.Context,
	gateway gatewayUseCase.GatewayUseCase,
	logger *slog.Logger,
	op gatewayDomain.Operation,
	in gatewayDomain.Input,
) {
	result, err := gateway.Execute(c.Request.Context(), op, in)
	if err != nil {
		httputil.HandleErrorGin(c, err, logger)
		return
	}
	writeResult(c, result)
}

func writeResult(c *gin.Context, result *gatewayDomain.Result) {
	if len(result.Body) == 0 {
		c.Status(result.StatusCode)
		return
	}
	c.Data(result.StatusCode, jsonContentType, result.Body)
}

// bindRequest decodes and validates the JSON body into req.
// It writes the error response and returns false on failure.
func bindRequest(c *gin.Context, req validatable, logger *slog.Logger) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, logger)
		return false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), logger)
		return false
	}
	return true
}

// bindRawJSON reads a body the gateway forwards without knowing its schema.
func bindRawJSON(c *gin.Context, logger *slog.Logger) (json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, logger)
		return nil, false
	}
	if len(body) == 0 || !json.Valid(body) {
		httputil.HandleBadRequestGin(c, fmt.Errorf("request body must be a JSON document"), logger)
		return nil, false
	}
	return json.RawMessage(body), true
}

// intParam returns the named path parameter after checking it is a positive integer.
func intParam(c *gin.Context, name string, logger *slog.Logger) (string, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("%s must be a positive integer", name)),
			logger)
		return "", false
	}
	return strconv.FormatInt(value, 10), true
}
