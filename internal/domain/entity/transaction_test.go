package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/stakeway/backoffice/internal/domain/error"
	coremocks "github.com/stakeway/backoffice/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.FixedTimeProvider{Fixed: fixedTime}

	user := &User{ID: 7, Username: "alice"}
	pkg := &Package{
		ID:                 3,
		Name:               "Growth",
		PriceCents:         2_500_000,
		MinTokensRequired:  10,
		StackingPeriodDays: 365,
	}

	t.Run("Valid transaction creation", func(t *testing.T) {
		txn, err := NewTransaction(user, pkg, 500, "UTR-001", timeProvider)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), txn.UserID)
		assert.Equal(t, "alice", txn.Username)
		assert.Equal(t, uint64(3), txn.PackageID)
		assert.Equal(t, "Growth", txn.PackageName)
		assert.Equal(t, int64(2_500_000), txn.PriceCents)
		assert.Equal(t, float64(500), txn.Tokens)
		assert.Equal(t, 365, txn.StackingPeriodDays)
		assert.Equal(t, "UTR-001", txn.UTR)
		assert.Equal(t, fixedTime, txn.PurchasedAt)
		assert.Equal(t, fixedTime, txn.LastAccruedAt)
		assert.Equal(t, StatusPending, txn.Status)
	})

	t.Run("Nil user", func(t *testing.T) {
		txn, err := NewTransaction(nil, pkg, 500, "UTR-001", timeProvider)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, txn)
	})

	t.Run("Nil package", func(t *testing.T) {
		txn, err := NewTransaction(user, nil, 500, "UTR-001", timeProvider)

		assert.ErrorIs(t, err, errs.ErrPackageNotFound)
		assert.Nil(t, txn)
	})

	t.Run("Non-positive tokens", func(t *testing.T) {
		txn, err := NewTransaction(user, pkg, 0, "UTR-001", timeProvider)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, txn)
	})
}

func TestTransaction_ApproveReject(t *testing.T) {
	t.Run("Approve pending transaction", func(t *testing.T) {
		txn := &Transaction{ID: 1, Status: StatusPending}

		err := txn.Approve()

		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, txn.Status)
		assert.True(t, txn.IsResolved())
	})

	t.Run("Reject pending transaction", func(t *testing.T) {
		txn := &Transaction{ID: 1, Status: StatusPending}

		err := txn.Reject()

		assert.NoError(t, err)
		assert.Equal(t, StatusRejected, txn.Status)
	})

	t.Run("Approve already approved transaction", func(t *testing.T) {
		txn := &Transaction{ID: 1, Status: StatusApproved}

		err := txn.Approve()

		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Contains(t, err.Error(), "approved")
		assert.Equal(t, StatusApproved, txn.Status)
	})

	t.Run("Approve rejected transaction", func(t *testing.T) {
		txn := &Transaction{ID: 1, Status: StatusRejected}

		err := txn.Approve()

		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Equal(t, StatusRejected, txn.Status)
	})

	t.Run("Reject approved transaction", func(t *testing.T) {
		txn := &Transaction{ID: 1, Status: StatusApproved}

		err := txn.Reject()

		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Equal(t, StatusApproved, txn.Status)
	})
}

func TestIsValidAction(t *testing.T) {
	assert.True(t, IsValidAction("approved"))
	assert.True(t, IsValidAction("rejected"))
	assert.False(t, IsValidAction("pending"))
	assert.False(t, IsValidAction("APPROVED"))
	assert.False(t, IsValidAction(""))
}

func TestTransaction_Accrue(t *testing.T) {
	purchasedAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	// 100 tokens over a 100-day stacking period vests one token per day.
	newApproved := func() *Transaction {
		return &Transaction{
			ID:                 1,
			Tokens:             100,
			StackingPeriodDays: 100,
			PurchasedAt:        purchasedAt,
			LastAccruedAt:      purchasedAt,
			Status:             StatusApproved,
		}
	}

	t.Run("No accrual before transaction is approved", func(t *testing.T) {
		txn := newApproved()
		txn.Status = StatusPending

		changed := txn.Accrue(purchasedAt.Add(48 * time.Hour))

		assert.False(t, changed)
		assert.Equal(t, float64(0), txn.TokensAvailable)
		assert.Equal(t, purchasedAt, txn.LastAccruedAt)
	})

	t.Run("No accrual within the first 24 hours", func(t *testing.T) {
		txn := newApproved()

		changed := txn.Accrue(purchasedAt.Add(23 * time.Hour))

		assert.False(t, changed)
		assert.Equal(t, float64(0), txn.TokensAvailable)
		assert.Equal(t, purchasedAt, txn.LastAccruedAt)
	})

	t.Run("One full day vests one day's worth", func(t *testing.T) {
		txn := newApproved()
		now := purchasedAt.Add(24 * time.Hour)

		changed := txn.Accrue(now)

		assert.True(t, changed)
		assert.InDelta(t, 1.0, txn.TokensAvailable, 1e-9)
		assert.Equal(t, now, txn.LastAccruedAt)
	})

	t.Run("Partial days floor to whole accrual windows", func(t *testing.T) {
		txn := newApproved()
		now := purchasedAt.Add(3*24*time.Hour + 10*time.Hour)

		changed := txn.Accrue(now)

		assert.True(t, changed)
		assert.InDelta(t, 3.0, txn.TokensAvailable, 1e-9)
		assert.Equal(t, now, txn.LastAccruedAt)
	})

	t.Run("Same-day repeat call is a no-op", func(t *testing.T) {
		txn := newApproved()
		first := purchasedAt.Add(24 * time.Hour)
		require.True(t, txn.Accrue(first))

		changed := txn.Accrue(first.Add(2 * time.Hour))

		assert.False(t, changed)
		assert.InDelta(t, 1.0, txn.TokensAvailable, 1e-9)
		assert.Equal(t, first, txn.LastAccruedAt)
	})

	t.Run("No accrual past the end of the stacking period", func(t *testing.T) {
		txn := newApproved()

		changed := txn.Accrue(purchasedAt.AddDate(0, 0, 101))

		assert.False(t, changed)
		assert.Equal(t, float64(0), txn.TokensAvailable)
	})

	t.Run("Accrual caps at undrawn total", func(t *testing.T) {
		txn := newApproved()
		txn.TokensWithdrawn = 40
		txn.TokensAvailable = 55

		changed := txn.Accrue(purchasedAt.Add(10 * 24 * time.Hour))

		assert.True(t, changed)
		// 55 + 10 would exceed the 60 tokens not yet withdrawn.
		assert.InDelta(t, 60.0, txn.TokensAvailable, 1e-9)
	})

	t.Run("Daily calls accrue the same total as one late call", func(t *testing.T) {
		// 300 tokens over 30 days vests ten tokens per day.
		daily := &Transaction{
			ID:                 2,
			Tokens:             300,
			StackingPeriodDays: 30,
			PurchasedAt:        purchasedAt,
			LastAccruedAt:      purchasedAt,
			Status:             StatusApproved,
		}
		late := *daily

		for day := 1; day <= 3; day++ {
			require.True(t, daily.Accrue(purchasedAt.Add(time.Duration(day)*24*time.Hour)))
		}
		require.True(t, late.Accrue(purchasedAt.Add(72*time.Hour)))

		assert.InDelta(t, 30.0, daily.TokensAvailable, 1e-9)
		assert.InDelta(t, late.TokensAvailable, daily.TokensAvailable, 1e-9)
		assert.Equal(t, late.LastAccruedAt, daily.LastAccruedAt)
	})

	t.Run("Zero stacking period never accrues", func(t *testing.T) {
		txn := newApproved()
		txn.StackingPeriodDays = 0

		changed := txn.Accrue(purchasedAt.Add(48 * time.Hour))

		assert.False(t, changed)
	})
}

func TestTransaction_WithdrawTokens(t *testing.T) {
	t.Run("Moves tokens from available to withdrawn", func(t *testing.T) {
		txn := &Transaction{ID: 1, Tokens: 100, TokensAvailable: 30, TokensWithdrawn: 10}

		err := txn.WithdrawTokens(25)

		assert.NoError(t, err)
		assert.InDelta(t, 5.0, txn.TokensAvailable, 1e-9)
		assert.InDelta(t, 35.0, txn.TokensWithdrawn, 1e-9)
	})

	t.Run("Rejects withdrawal exceeding vested balance", func(t *testing.T) {
		txn := &Transaction{ID: 1, Tokens: 100, TokensAvailable: 30}

		err := txn.WithdrawTokens(30.5)

		assert.ErrorIs(t, err, errs.ErrInsufficientTokens)
		assert.InDelta(t, 30.0, txn.TokensAvailable, 1e-9)
		assert.Equal(t, float64(0), txn.TokensWithdrawn)
	})
}

func TestTransaction_Price(t *testing.T) {
	txn := &Transaction{PriceCents: 2_500_000}
	assert.Equal(t, "25000.00", txn.Price())
}
