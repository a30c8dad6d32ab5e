package entity

import (
	"time"

	errs "github.com/stakeway/backoffice/internal/domain/error"
)

// WithdrawalStatus defines possible status values for a withdrawal request
type WithdrawalStatus string

// WithdrawalStatus constants. Pending is the only non-terminal state.
const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// TokenWithdrawal is a request to withdraw vested tokens from one specific
// transaction. Settlement debits the transaction's available tokens.
type TokenWithdrawal struct {
	ID            uint64
	UserID        uint64
	Username      string
	TransactionID uint64
	Tokens        float64
	ValueCents    int64 // USD value computed at request time
	UpiID         string
	// SettlementRef is the externally supplied proof-of-payment (UTR/TXID),
	// required before the request can be approved.
	SettlementRef string
	Status        WithdrawalStatus
	RequestedAt   time.Time
}

// IsResolved reports whether the withdrawal reached a terminal state
func (w *TokenWithdrawal) IsResolved() bool {
	return w.Status != WithdrawalPending
}

// Approve marks the withdrawal approved with its settlement reference.
// An empty reference is a validation error; terminal states conflict.
func (w *TokenWithdrawal) Approve(settlementRef string) error {
	if w.IsResolved() {
		return errs.NewAlreadyResolvedError("withdrawal", w.ID, string(w.Status))
	}
	if settlementRef == "" {
		return errs.ErrMissingSettlementRef
	}

	w.Status = WithdrawalApproved
	w.SettlementRef = settlementRef
	return nil
}

// Reject marks the withdrawal rejected with no balance changes
func (w *TokenWithdrawal) Reject() error {
	if w.IsResolved() {
		return errs.NewAlreadyResolvedError("withdrawal", w.ID, string(w.Status))
	}
	w.Status = WithdrawalRejected
	return nil
}

// WalletWithdrawal is a request to withdraw commission earnings from the
// user's aggregate wallet. Settlement debits the wallet, never the lifetime
// record.
type WalletWithdrawal struct {
	ID            uint64
	UserID        uint64
	Username      string
	AmountCents   int64
	UpiID         string
	SettlementRef string
	Status        WithdrawalStatus
	RequestedAt   time.Time
}

// Amount returns the requested amount as a two-decimal string
func (w *WalletWithdrawal) Amount() string {
	return CentsToAmount(w.AmountCents)
}

// IsResolved reports whether the withdrawal reached a terminal state
func (w *WalletWithdrawal) IsResolved() bool {
	return w.Status != WithdrawalPending
}

// Approve marks the withdrawal approved with the caller-supplied settlement
// reference. Unlike token withdrawals, wallet settlement does not require the
// reference to be present.
func (w *WalletWithdrawal) Approve(settlementRef string) error {
	if w.IsResolved() {
		return errs.NewAlreadyResolvedError("withdrawal", w.ID, string(w.Status))
	}

	w.Status = WithdrawalApproved
	w.SettlementRef = settlementRef
	return nil
}

// Reject marks the withdrawal rejected with no balance changes
func (w *WalletWithdrawal) Reject() error {
	if w.IsResolved() {
		return errs.NewAlreadyResolvedError("withdrawal", w.ID, string(w.Status))
	}
	w.Status = WithdrawalRejected
	return nil
}
