package dto

import (
	"time"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// ResolveTransactionRequest represents an admin approve/reject decision
type ResolveTransactionRequest struct {
	TransactionID uint64 `json:"transactionId" binding:"required"`
	Action        string `json:"action" binding:"required,oneof=approved rejected"`
}

// ResolveTransactionResponse reports the terminal status of a resolved transaction
type ResolveTransactionResponse struct {
	TransactionID uint64 `json:"transactionId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// TransactionResponse represents one purchase transaction
type TransactionResponse struct {
	ID                 uint64    `json:"id"`
	UserID             uint64    `json:"userId"`
	Username           string    `json:"username"`
	PackageID          uint64    `json:"packageId"`
	PackageName        string    `json:"packageName"`
	Price              string    `json:"price"`
	Tokens             float64   `json:"tokens"`
	TokensWithdrawn    float64   `json:"tokensWithdrawn"`
	TokensAvailable    float64   `json:"tokensAvailable"`
	MinTokensRequired  float64   `json:"minTokensRequired"`
	StackingPeriodDays int       `json:"stackingPeriodDays"`
	UTR                string    `json:"utrNo"`
	PurchasedAt        time.Time `json:"purchasedAt"`
	LastAccruedAt      time.Time `json:"lastAccruedAt"`
	Status             string    `json:"status"`
}

// ToTransactionResponse maps a transaction entity to its API representation
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 txn.ID,
		UserID:             txn.UserID,
		Username:           txn.Username,
		PackageID:          txn.PackageID,
		PackageName:        txn.PackageName,
		Price:              txn.Price(),
		Tokens:             txn.Tokens,
		TokensWithdrawn:    txn.TokensWithdrawn,
		TokensAvailable:    txn.TokensAvailable,
		MinTokensRequired:  txn.MinTokensRequired,
		StackingPeriodDays: txn.StackingPeriodDays,
		UTR:                txn.UTR,
		PurchasedAt:        txn.PurchasedAt,
		LastAccruedAt:      txn.LastAccruedAt,
		Status:             string(txn.Status),
	}
}

// ToTransactionResponses maps a list of transaction entities
func ToTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, ToTransactionResponse(txn))
	}
	return responses
}
