package entity

import (
	"math"
	"time"

	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
)

// TransactionStatus defines possible status values for a purchase transaction
type TransactionStatus string

// TransactionStatus constants. Pending is the only non-terminal state.
const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusRejected TransactionStatus = "rejected"
)

// ResolveAction is the admin decision applied to a pending transaction or withdrawal
type ResolveAction string

// ResolveAction constants
const (
	ActionApprove ResolveAction = "approved"
	ActionReject  ResolveAction = "rejected"
)

// IsValidAction validates if the resolve action is allowed
func IsValidAction(action string) bool {
	return action == string(ActionApprove) || action == string(ActionReject)
}

// hoursPerAccrualWindow is the vesting granularity: tokens accrue once per
// elapsed 24-hour window, never fractionally within one.
const hoursPerAccrualWindow = 24

// Transaction is one package purchase. Package name and price are denormalized
// at creation time; the vesting clock starts at PurchasedAt and the accrual
// watermark LastAccruedAt only ever moves forward.
type Transaction struct {
	ID          uint64
	UserID      uint64
	Username    string
	PackageID   uint64
	PackageName string
	PriceCents  int64

	Tokens             float64 // total tokens purchased, fixed at creation
	TokensWithdrawn    float64 // monotonic non-decreasing
	TokensAvailable    float64 // vested but not yet withdrawn
	MinTokensRequired  float64
	StackingPeriodDays int

	// UTR is the buyer's payment reference submitted with the purchase.
	UTR string

	PurchasedAt   time.Time // start of the vesting clock
	LastAccruedAt time.Time // last vesting accrual timestamp
	Status        TransactionStatus
}

// NewTransaction creates a pending purchase from a catalog package
func NewTransaction(user *User, pkg *Package, tokens float64, utr string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if user == nil || user.ID == 0 {
		return nil, errs.ErrUserNotFound
	}
	if pkg == nil || pkg.ID == 0 {
		return nil, errs.ErrPackageNotFound
	}
	if tokens <= 0 {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &Transaction{
		UserID:             user.ID,
		Username:           user.Username,
		PackageID:          pkg.ID,
		PackageName:        pkg.Name,
		PriceCents:         pkg.PriceCents,
		Tokens:             tokens,
		MinTokensRequired:  pkg.MinTokensRequired,
		StackingPeriodDays: pkg.StackingPeriodDays,
		UTR:                utr,
		PurchasedAt:        now,
		LastAccruedAt:      now,
		Status:             StatusPending,
	}, nil
}

// Price returns the denormalized package price as a two-decimal string
func (t *Transaction) Price() string {
	return CentsToAmount(t.PriceCents)
}

// IsResolved reports whether the transaction reached a terminal state
func (t *Transaction) IsResolved() bool {
	return t.Status != StatusPending
}

// Approve transitions pending to approved. Terminal states conflict.
func (t *Transaction) Approve() error {
	if t.IsResolved() {
		return errs.NewAlreadyResolvedError("transaction", t.ID, string(t.Status))
	}
	t.Status = StatusApproved
	return nil
}

// Reject transitions pending to rejected. Terminal states conflict.
func (t *Transaction) Reject() error {
	if t.IsResolved() {
		return errs.NewAlreadyResolvedError("transaction", t.ID, string(t.Status))
	}
	t.Status = StatusRejected
	return nil
}

// Accrue lazily vests tokens for the elapsed time since the last accrual and
// returns whether anything changed. Accrual granularity is daily: fewer than
// 24 elapsed hours is a no-op, which also makes repeated same-day calls
// idempotent. Once the stacking period has fully elapsed accrual stops with
// no catch-up release. The vested amount is capped so that
// TokensAvailable + TokensWithdrawn never exceeds Tokens.
func (t *Transaction) Accrue(now time.Time) bool {
	if t.Status != StatusApproved || t.StackingPeriodDays <= 0 {
		return false
	}

	endDate := t.PurchasedAt.AddDate(0, 0, t.StackingPeriodDays)
	if now.After(endDate) {
		return false
	}

	hoursSinceLastAccrual := now.Sub(t.LastAccruedAt).Hours()
	if hoursSinceLastAccrual < hoursPerAccrualWindow {
		return false
	}

	tokensPerDay := t.Tokens / float64(t.StackingPeriodDays)
	daysElapsed := math.Floor(hoursSinceLastAccrual / hoursPerAccrualWindow)
	tokensToAdd := tokensPerDay * daysElapsed

	remaining := t.Tokens - t.TokensWithdrawn
	t.TokensAvailable = math.Min(t.TokensAvailable+tokensToAdd, remaining)
	t.LastAccruedAt = now
	return true
}

// WithdrawTokens settles an approved token withdrawal against the vested
// balance, moving the quantity from available to withdrawn
func (t *Transaction) WithdrawTokens(tokens float64) error {
	if tokens > t.TokensAvailable {
		return errs.NewInsufficientTokensError(t.ID, tokens, t.TokensAvailable)
	}

	t.TokensAvailable -= tokens
	t.TokensWithdrawn += tokens
	return nil
}
