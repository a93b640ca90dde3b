// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
)

const (
	msgUpstream    = "Error communicating with the upstream service"
	msgUnexpected  = "Unexpected error while processing the request"
	detailInternal = "An internal error occurred"
	detailToken    = "Could not obtain credentials for the upstream service"
)

// ErrorResponse is the uniform error envelope returned by every API route.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// ProblemDetails is the envelope written when a handler panics.
type ProblemDetails struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  int    `json:"status"`
	TraceID string `json:"traceId"`
	Detail  string `json:"detail"`
}

// detailer is implemented by errors that carry a caller-safe detail string.
type detailer interface {
	Detail() string
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response using Gin.
// Internal error text is logged but never written to the response.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Message: "Invalid request",
			Detail:  err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{
			Message: "Unauthorized",
			Detail:  "Authentication is required",
		}

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		errorResponse = ErrorResponse{
			Message: "Forbidden",
			Detail:  "You don't have permission to access this resource",
		}

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{
			Message: "Not found",
			Detail:  "The requested resource was not found",
		}

	case apperrors.Is(err, apperrors.ErrRateLimited):
		statusCode = http.StatusTooManyRequests
		errorResponse = ErrorResponse{
			Message: "Too many requests",
			Detail:  "Rate limit exceeded, try again later",
		}

	case apperrors.Is(err, apperrors.ErrTokenAcquisition):
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Message: msgUpstream,
			Detail:  detailToken,
		}

	case apperrors.Is(err, apperrors.ErrUpstream):
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Message: msgUpstream,
			Detail:  upstreamDetail(err),
		}

	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Message: msgUnexpected,
			Detail:  detailInternal,
		}
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "Invalid request",
		Detail:  err.Error(),
	})
}

// AbortWithErrorGin writes the error envelope and stops the handler chain.
func AbortWithErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	HandleErrorGin(c, err, logger)
	c.Abort()
}

// WriteProblemGin writes a 500 problem+json document for an unhandled failure.
func WriteProblemGin(c *gin.Context, traceID string) {
	problem := ProblemDetails{
		Type:    "https://httpstatuses.com/500",
		Title:   "Internal Server Error",
		Status:  http.StatusInternalServerError,
		TraceID: traceID,
		Detail:  "An unhandled error occurred. Please try again later.",
	}

	c.Header("Content-Type", "application/problem+json")
	c.AbortWithStatusJSON(http.StatusInternalServerError, problem)
}

func upstreamDetail(err error) string {
	var d detailer
	if apperrors.As(err, &d) {
		return d.Detail()
	}
	return apperrors.ErrUpstream.Error()
}
