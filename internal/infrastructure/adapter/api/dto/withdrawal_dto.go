package dto

import (
	"time"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// SettleWithdrawalRequest represents an admin approve/reject decision on a
// withdrawal. UtrNo carries the settlement proof-of-payment on approval.
type SettleWithdrawalRequest struct {
	WithdrawalID uint64 `json:"withdrawalId" binding:"required"`
	Action       string `json:"action" binding:"required,oneof=approved rejected"`
	UtrNo        string `json:"utrNo"`
}

// SettleWithdrawalResponse reports the terminal status of a settled withdrawal
type SettleWithdrawalResponse struct {
	WithdrawalID uint64 `json:"withdrawalId"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

// TokenWithdrawalResponse represents one token withdrawal request
type TokenWithdrawalResponse struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"userId"`
	Username      string    `json:"username"`
	TransactionID uint64    `json:"transactionId"`
	Tokens        float64   `json:"tokens"`
	Value         string    `json:"value"`
	UpiID         string    `json:"upiId"`
	SettlementRef string    `json:"utrNo,omitempty"`
	Status        string    `json:"status"`
	RequestedAt   time.Time `json:"requestedAt"`
}

// ToTokenWithdrawalResponse maps a token withdrawal entity to its API representation
func ToTokenWithdrawalResponse(w *entity.TokenWithdrawal) TokenWithdrawalResponse {
	return TokenWithdrawalResponse{
		ID:            w.ID,
		UserID:        w.UserID,
		Username:      w.Username,
		TransactionID: w.TransactionID,
		Tokens:        w.Tokens,
		Value:         entity.CentsToAmount(w.ValueCents),
		UpiID:         w.UpiID,
		SettlementRef: w.SettlementRef,
		Status:        string(w.Status),
		RequestedAt:   w.RequestedAt,
	}
}

// ToTokenWithdrawalResponses maps a list of token withdrawal entities
func ToTokenWithdrawalResponses(ws []*entity.TokenWithdrawal) []TokenWithdrawalResponse {
	responses := make([]TokenWithdrawalResponse, 0, len(ws))
	for _, w := range ws {
		responses = append(responses, ToTokenWithdrawalResponse(w))
	}
	return responses
}

// WalletWithdrawalResponse represents one wallet withdrawal request
type WalletWithdrawalResponse struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"userId"`
	Username      string    `json:"username"`
	Amount        string    `json:"amount"`
	UpiID         string    `json:"upiId"`
	SettlementRef string    `json:"utrNo,omitempty"`
	Status        string    `json:"status"`
	RequestedAt   time.Time `json:"requestedAt"`
}

// ToWalletWithdrawalResponse maps a wallet withdrawal entity to its API representation
func ToWalletWithdrawalResponse(w *entity.WalletWithdrawal) WalletWithdrawalResponse {
	return WalletWithdrawalResponse{
		ID:            w.ID,
		UserID:        w.UserID,
		Username:      w.Username,
		Amount:        w.Amount(),
		UpiID:         w.UpiID,
		SettlementRef: w.SettlementRef,
		Status:        string(w.Status),
		RequestedAt:   w.RequestedAt,
	}
}

// ToWalletWithdrawalResponses maps a list of wallet withdrawal entities
func ToWalletWithdrawalResponses(ws []*entity.WalletWithdrawal) []WalletWithdrawalResponse {
	responses := make([]WalletWithdrawalResponse, 0, len(ws))
	for _, w := range ws {
		responses = append(responses, ToWalletWithdrawalResponse(w))
	}
	return responses
}
