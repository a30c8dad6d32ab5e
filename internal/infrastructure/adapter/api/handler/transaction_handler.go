package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/usecase/lifecycle"
	"github.com/stakeway/backoffice/internal/domain/usecase/vesting"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles purchase transaction HTTP requests
type TransactionHandler struct {
	lifecycleService *lifecycle.Service
	vestingEngine    *vesting.Engine
	logger           coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	lifecycleService *lifecycle.Service,
	vestingEngine *vesting.Engine,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		lifecycleService: lifecycleService,
		vestingEngine:    vestingEngine,
		logger:           logger,
	}
}

// List handles the GET /api/transactions endpoint
func (h *TransactionHandler) List(c *gin.Context) {
	txns, err := h.lifecycleService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// ListPending handles the GET /api/transactions/pending endpoint
func (h *TransactionHandler) ListPending(c *gin.Context) {
	txns, err := h.lifecycleService.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// Resolve handles the POST /api/transactions/resolve endpoint
func (h *TransactionHandler) Resolve(c *gin.Context) {
	var req dto.ResolveTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	result, err := h.lifecycleService.Resolve(c.Request.Context(), req.TransactionID, req.Action)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResolveTransactionResponse{
		TransactionID: req.TransactionID,
		Status:        string(result.Status),
		Message:       result.Message,
	})
}

// Accrue handles the POST /api/transactions/:id/accrue endpoint
func (h *TransactionHandler) Accrue(c *gin.Context) {
	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid transaction ID format",
		})
		return
	}

	if err := h.vestingEngine.Accrue(c.Request.Context(), transactionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	txn, err := h.lifecycleService.Get(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
