package handler

import (
	"net/http"
	"strconv"

	"github.com/stakeway/backoffice/internal/domain/entity"
	domainerr "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/usecase/content"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ContentHandler handles notifications, terms, stats and rate HTTP requests
type ContentHandler struct {
	contentService *content.Service
	logger         coreport.Logger
}

// NewContentHandler creates a new content handler instance
func NewContentHandler(contentService *content.Service, logger coreport.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// ListNotifications handles the GET /api/notifications endpoint
func (h *ContentHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.contentService.ListNotifications(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponses(notifications))
}

// CreateNotification handles the POST /api/notifications endpoint
func (h *ContentHandler) CreateNotification(c *gin.Context) {
	var req dto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	notification, err := h.contentService.AddNotification(c.Request.Context(), req.Message, req.IsImportant)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}

// UpdateNotification handles the PUT /api/notifications/:id endpoint
func (h *ContentHandler) UpdateNotification(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	if err := h.contentService.UpdateNotification(c.Request.Context(), id, req.Message, req.IsImportant); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteNotification handles the DELETE /api/notifications/:id endpoint
func (h *ContentHandler) DeleteNotification(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.contentService.DeleteNotification(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTerms handles the GET /api/terms endpoint
func (h *ContentHandler) GetTerms(c *gin.Context) {
	terms, err := h.contentService.GetTerms(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TermsResponse{
		Paragraph: terms.Paragraph,
		UpdatedAt: terms.UpdatedAt,
	})
}

// UpdateTerms handles the PUT /api/terms endpoint
func (h *ContentHandler) UpdateTerms(c *gin.Context) {
	var req dto.TermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	if err := h.contentService.UpdateTerms(c.Request.Context(), req.Paragraph); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStats handles the GET /api/stats endpoint
func (h *ContentHandler) GetStats(c *gin.Context) {
	stats, err := h.contentService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// UpdateStats handles the PUT /api/stats endpoint
func (h *ContentHandler) UpdateStats(c *gin.Context) {
	var req dto.StatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	stats := &entity.PlatformStats{
		TokenValue:            req.TokenValue,
		TotalInvestment:       req.TotalInvestment,
		ProfitPercent:         req.ProfitPercent,
		ActiveUsers:           req.ActiveUsers,
		TokenDescription:      req.TokenDescription,
		InvestmentDescription: req.InvestmentDescription,
		ProfitDescription:     req.ProfitDescription,
		UsersDescription:      req.UsersDescription,
	}

	if err := h.contentService.UpdateStats(c.Request.Context(), stats); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// GetRate handles the GET /api/rate endpoint
func (h *ContentHandler) GetRate(c *gin.Context) {
	rate, err := h.contentService.GetRate(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{
		Rate:      rate.Rate,
		UpdatedAt: rate.UpdatedAt,
	})
}

// RefreshRate handles the POST /api/rate/refresh endpoint
func (h *ContentHandler) RefreshRate(c *gin.Context) {
	rate, err := h.contentService.RefreshRate(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{
		Rate:      rate.Rate,
		UpdatedAt: rate.UpdatedAt,
	})
}

func (h *ContentHandler) parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid ID format",
		})
		return 0, false
	}
	return id, true
}
