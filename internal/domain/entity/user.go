package entity

import (
	"time"

	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
)

// User represents a platform member in the referral graph. Wallet balances are
// private and only move through the credit/debit methods so that the
// wallet <= walletRecord invariant cannot be broken from outside.
type User struct {
	ID          uint64
	Username    string
	Email       string
	PhoneNumber string

	// Sponsor is the referrer's username. Empty marks a chain root.
	Sponsor   string
	Referrals []string
	// Level is the depth marker in the referral forest; 0 marks a root.
	Level int

	wallet        int64 // spendable commission balance, in cents
	walletRecord  int64 // lifetime commission credited, in cents, monotonic
	totalInvested int64 // sum of approved purchase prices, in cents, monotonic

	// TokenWallet is reserved for a future token balance; no core flow writes it.
	TokenWallet float64

	// Packages is the purchase-amount history in cents, not authoritative state.
	Packages []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a member with zeroed balances
func NewUser(username, sponsor string, level int, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &User{
		Username:  username,
		Sponsor:   sponsor,
		Level:     level,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Wallet returns the spendable commission balance in cents
func (u *User) Wallet() int64 {
	return u.wallet
}

// WalletRecord returns the lifetime credited commission in cents
func (u *User) WalletRecord() int64 {
	return u.walletRecord
}

// TotalInvested returns the cumulative approved purchase total in cents
func (u *User) TotalInvested() int64 {
	return u.totalInvested
}

// WalletAmount returns the wallet as a two-decimal string
func (u *User) WalletAmount() string {
	return CentsToAmount(u.wallet)
}

// IsRoot reports whether this user terminates a sponsor chain
func (u *User) IsRoot() bool {
	return u.Level == 0 || u.Sponsor == ""
}

// SetBalances hydrates the private balance fields (for repositories)
func (u *User) SetBalances(walletCents, walletRecordCents, totalInvestedCents int64) {
	u.wallet = walletCents
	u.walletRecord = walletRecordCents
	u.totalInvested = totalInvestedCents
}

// CreditCommission adds a referral commission to both the spendable wallet and
// the lifetime record
func (u *User) CreditCommission(cents int64, timeProvider coreport.TimeProvider) {
	u.wallet += cents
	u.walletRecord += cents
	u.UpdatedAt = timeProvider.Now()
}

// DebitWallet removes an approved wallet withdrawal from the spendable balance.
// The lifetime record is never reduced.
func (u *User) DebitWallet(cents int64, timeProvider coreport.TimeProvider) error {
	if u.wallet < cents {
		return errs.NewInsufficientBalanceError(u.ID, CentsToAmount(cents), CentsToAmount(u.wallet))
	}

	u.wallet -= cents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// RecordInvestment adds an approved purchase to the invested total and history
func (u *User) RecordInvestment(priceCents int64, timeProvider coreport.TimeProvider) {
	u.totalInvested += priceCents
	u.Packages = append(u.Packages, priceCents)
	u.UpdatedAt = timeProvider.Now()
}
