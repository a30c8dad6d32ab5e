package handler

import (
	"net/http"

	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication HTTP requests
type AuthHandler struct {
	authorizer coreport.Authorizer
	logger     coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authorizer coreport.Authorizer, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authorizer: authorizer,
		logger:     logger,
	}
}

// Login handles the POST /api/auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	token, err := h.authorizer.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Warn("Admin login rejected", map[string]any{
			"username": req.Username,
			"ip":       c.ClientIP(),
		})
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("Admin logged in", map[string]any{
		"username": req.Username,
		"ip":       c.ClientIP(),
	})
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
