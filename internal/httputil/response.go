// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ocial123/qr-event-app/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// sentinelMapping routes a shared sentinel error to an HTTP status and code.
// InvalidInput carries the wrapped error text so the caller learns which
// field was rejected; the other messages are fixed.
type sentinelMapping struct {
	sentinel    error
	status      int
	code        string
	message     string
	echoMessage bool
}

var sentinelMappings = []sentinelMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found", false},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data", false},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", "", true},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Authentication is required", false},
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response using Gin.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	// Unknown errors stay opaque to the client.
	statusCode := http.StatusInternalServerError
	errorResponse := ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	}

	for _, m := range sentinelMappings {
		if !apperrors.Is(err, m.sentinel) {
			continue
		}
		statusCode = m.status
		errorResponse = ErrorResponse{Error: m.code, Message: m.message}
		if m.echoMessage {
			errorResponse.Message = err.Error()
		}
		break
	}

	// Log the full error details (including wrapped errors)
	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
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
		Error:   "bad_request",
		Message: err.Error(),
	})
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors using Gin.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
