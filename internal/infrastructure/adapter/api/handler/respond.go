package handler

import (
	"net/http"

	domainerr "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError translates a domain error into the API error envelope.
// Unrecognized errors are logged and masked as a plain 500.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case domainerr.IsAlreadyResolvedError(err):
		status = http.StatusConflict
		message = err.Error()
	case domainerr.IsInsufficientFundsError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsAuthError(err):
		status = http.StatusUnauthorized
		message = err.Error()
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest reports a request binding failure
func respondBadRequest(c *gin.Context, logger coreport.Logger, err error) {
	logger.Error("Invalid request format", map[string]any{
		"error": err.Error(),
		"path":  c.Request.URL.Path,
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
