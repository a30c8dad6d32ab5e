package handler

import (
	"net/http"

	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/usecase/withdrawal"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles withdrawal settlement HTTP requests
type WithdrawalHandler struct {
	tokenSettlement  *withdrawal.TokenSettlement
	walletSettlement *withdrawal.WalletSettlement
	logger           coreport.Logger
}

// NewWithdrawalHandler creates a new withdrawal handler instance
func NewWithdrawalHandler(
	tokenSettlement *withdrawal.TokenSettlement,
	walletSettlement *withdrawal.WalletSettlement,
	logger coreport.Logger,
) *WithdrawalHandler {
	return &WithdrawalHandler{
		tokenSettlement:  tokenSettlement,
		walletSettlement: walletSettlement,
		logger:           logger,
	}
}

// ListTokenWithdrawals handles the GET /api/withdrawals/tokens endpoint
func (h *WithdrawalHandler) ListTokenWithdrawals(c *gin.Context) {
	withdrawals, err := h.tokenSettlement.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenWithdrawalResponses(withdrawals))
}

// SettleTokenWithdrawal handles the POST /api/withdrawals/tokens/resolve endpoint
func (h *WithdrawalHandler) SettleTokenWithdrawal(c *gin.Context) {
	var req dto.SettleWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	result, err := h.tokenSettlement.Settle(c.Request.Context(), req.WithdrawalID, req.Action, req.UtrNo)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SettleWithdrawalResponse{
		WithdrawalID: req.WithdrawalID,
		Status:       string(result.Status),
		Message:      result.Message,
	})
}

// ListWalletWithdrawals handles the GET /api/withdrawals/wallet endpoint
func (h *WithdrawalHandler) ListWalletWithdrawals(c *gin.Context) {
	withdrawals, err := h.walletSettlement.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletWithdrawalResponses(withdrawals))
}

// SettleWalletWithdrawal handles the POST /api/withdrawals/wallet/resolve endpoint
func (h *WithdrawalHandler) SettleWalletWithdrawal(c *gin.Context) {
	var req dto.SettleWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	result, err := h.walletSettlement.Settle(c.Request.Context(), req.WithdrawalID, req.Action, req.UtrNo)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SettleWithdrawalResponse{
		WithdrawalID: req.WithdrawalID,
		Status:       string(result.Status),
		Message:      result.Message,
	})
}
