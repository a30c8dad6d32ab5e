package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/usecase/member"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles member administration HTTP requests
type UserHandler struct {
	memberService *member.Service
	logger        coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(memberService *member.Service, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		memberService: memberService,
		logger:        logger,
	}
}

// List handles the GET /api/users endpoint
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.memberService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetByUsername handles the GET /api/users/:username endpoint
func (h *UserHandler) GetByUsername(c *gin.Context) {
	username := c.Param("username")

	user, err := h.memberService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Update handles the PUT /api/users/:id endpoint. Only profile fields are
// editable; balances never move through this endpoint.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid user ID format",
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	user, err := h.memberService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Sponsor != "" {
		user.Sponsor = req.Sponsor
	}
	if req.Level != nil {
		user.Level = *req.Level
	}

	if err := h.memberService.Update(c.Request.Context(), user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
