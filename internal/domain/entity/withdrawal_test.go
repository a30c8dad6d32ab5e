package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/stakeway/backoffice/internal/domain/error"
)

func TestTokenWithdrawal_Approve(t *testing.T) {
	t.Run("Approve with settlement reference", func(t *testing.T) {
		w := &TokenWithdrawal{ID: 1, Status: WithdrawalPending}

		err := w.Approve("UTR-900")

		assert.NoError(t, err)
		assert.Equal(t, WithdrawalApproved, w.Status)
		assert.Equal(t, "UTR-900", w.SettlementRef)
	})

	t.Run("Approve without settlement reference", func(t *testing.T) {
		w := &TokenWithdrawal{ID: 1, Status: WithdrawalPending}

		err := w.Approve("")

		assert.ErrorIs(t, err, errs.ErrMissingSettlementRef)
		assert.Equal(t, WithdrawalPending, w.Status)
	})

	t.Run("Approve already approved withdrawal", func(t *testing.T) {
		w := &TokenWithdrawal{ID: 1, Status: WithdrawalApproved, SettlementRef: "UTR-900"}

		err := w.Approve("UTR-901")

		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Equal(t, "UTR-900", w.SettlementRef)
	})

	t.Run("Approve rejected withdrawal", func(t *testing.T) {
		w := &TokenWithdrawal{ID: 1, Status: WithdrawalRejected}

		err := w.Approve("UTR-900")

		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
	})
}

func TestTokenWithdrawal_Reject(t *testing.T) {
	t.Run("Reject pending withdrawal", func(t *testing.T) {
		w := &TokenWithdrawal{ID: 1, Status: WithdrawalPending}

		err := w.Reject()

		assert.NoError(t, err)
		assert.Equal(t, WithdrawalRejected, w.Status)
	})

	t.Run("Reject resolved withdrawal", func(t *testing.T) {
		w := &TokenWithdrawal{ID: 1, Status: WithdrawalApproved}

		err := w.Reject()

		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Equal(t, WithdrawalApproved, w.Status)
	})
}

func TestWalletWithdrawal_Approve(t *testing.T) {
	t.Run("Approve with settlement reference", func(t *testing.T) {
		w := &WalletWithdrawal{ID: 1, Status: WithdrawalPending}

		err := w.Approve("UTR-900")

		assert.NoError(t, err)
		assert.Equal(t, WithdrawalApproved, w.Status)
		assert.Equal(t, "UTR-900", w.SettlementRef)
	})

	t.Run("Approve without settlement reference", func(t *testing.T) {
		// Wallet settlement does not require proof-of-payment up front.
		w := &WalletWithdrawal{ID: 1, Status: WithdrawalPending}

		err := w.Approve("")

		assert.NoError(t, err)
		assert.Equal(t, WithdrawalApproved, w.Status)
		assert.Equal(t, "", w.SettlementRef)
	})

	t.Run("Approve resolved withdrawal", func(t *testing.T) {
		w := &WalletWithdrawal{ID: 1, Status: WithdrawalRejected}

		err := w.Approve("UTR-900")

		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Equal(t, WithdrawalRejected, w.Status)
	})
}

func TestWalletWithdrawal_Reject(t *testing.T) {
	t.Run("Reject pending withdrawal", func(t *testing.T) {
		w := &WalletWithdrawal{ID: 1, Status: WithdrawalPending}

		err := w.Reject()

		assert.NoError(t, err)
		assert.Equal(t, WithdrawalRejected, w.Status)
	})

	t.Run("Reject resolved withdrawal", func(t *testing.T) {
		w := &WalletWithdrawal{ID: 1, Status: WithdrawalApproved}

		err := w.Reject()

		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
	})
}

func TestWalletWithdrawal_Amount(t *testing.T) {
	w := &WalletWithdrawal{AmountCents: 150050}
	assert.Equal(t, "1500.50", w.Amount())
}
