package withdrawal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	"github.com/stakeway/backoffice/mocks/port/core"
	"github.com/stakeway/backoffice/mocks/port/persistence"
)

func TestTokenSettlement_Settle(t *testing.T) {
	// Define fixed time for consistent testing
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	ctx := context.Background()
	withdrawalID := uint64(9)
	transactionID := uint64(42)

	pendingWithdrawal := func() *entity.TokenWithdrawal {
		return &entity.TokenWithdrawal{
			ID:            withdrawalID,
			UserID:        7,
			Username:      "alice",
			TransactionID: transactionID,
			Tokens:        10,
			Status:        entity.WithdrawalPending,
		}
	}

	// An approved transaction with 30 tokens already vested and no further
	// accrual pending at the fixed clock.
	linkedTransaction := func() *entity.Transaction {
		return &entity.Transaction{
			ID:                 transactionID,
			Tokens:             100,
			TokensAvailable:    30,
			StackingPeriodDays: 100,
			PurchasedAt:        fixedTime,
			LastAccruedAt:      fixedTime,
			Status:             entity.StatusApproved,
		}
	}

	t.Run("should approve and debit the vested balance in one unit of work", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockWithdrawalRepo := new(persistence.MockTokenWithdrawalRepository)
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		w := pendingWithdrawal()
		txn := linkedTransaction()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetTokenWithdrawalRepository", ctx).Return(mockWithdrawalRepo)
		mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
		mockUow.On("Commit", ctx).Return(nil)

		mockWithdrawalRepo.On("GetByID", ctx, withdrawalID).Return(w, nil)
		mockTransactionRepo.On("GetByID", ctx, transactionID).Return(txn, nil)
		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)
		mockWithdrawalRepo.On("Update", ctx, mock.AnythingOfType("*entity.TokenWithdrawal")).Return(nil)

		mockLogger.On("Info", "Token withdrawal approved", mock.AnythingOfType("map[string]interface {}")).Return()

		settlement := NewTokenSettlement(mockUow, mockTimeProvider, mockLogger)

		// Act
		result, err := settlement.Settle(ctx, withdrawalID, "approved", "UTR-900")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.WithdrawalApproved, result.Status)
		assert.Equal(t, "Withdrawal approved successfully", result.Message)
		assert.Equal(t, "UTR-900", w.SettlementRef)
		assert.InDelta(t, 20.0, txn.TokensAvailable, 1e-9)
		assert.InDelta(t, 10.0, txn.TokensWithdrawn, 1e-9)

		mockUow.AssertNotCalled(t, "Rollback", mock.Anything)
		mockUow.AssertExpectations(t)
		mockWithdrawalRepo.AssertExpectations(t)
		mockTransactionRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject without debiting the transaction", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockWithdrawalRepo := new(persistence.MockTokenWithdrawalRepository)
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		w := pendingWithdrawal()
		txn := linkedTransaction()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetTokenWithdrawalRepository", ctx).Return(mockWithdrawalRepo)
		mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
		mockUow.On("Commit", ctx).Return(nil)

		mockWithdrawalRepo.On("GetByID", ctx, withdrawalID).Return(w, nil)
		mockTransactionRepo.On("GetByID", ctx, transactionID).Return(txn, nil)
		mockWithdrawalRepo.On("Update", ctx, mock.AnythingOfType("*entity.TokenWithdrawal")).Return(nil)
		mockLogger.On("Info", "Token withdrawal rejected", mock.AnythingOfType("map[string]interface {}")).Return()

		settlement := NewTokenSettlement(mockUow, mockTimeProvider, mockLogger)

		// Act
		result, err := settlement.Settle(ctx, withdrawalID, "rejected", "")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.WithdrawalRejected, result.Status)
		assert.Equal(t, "Withdrawal rejected successfully", result.Message)
		assert.InDelta(t, 30.0, txn.TokensAvailable, 1e-9)
		mockTransactionRepo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)

		mockUow.AssertExpectations(t)
		mockWithdrawalRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should roll back either action when the linked transaction is gone", func(t *testing.T) {
		for _, action := range []string{"approved", "rejected"} {
			// Arrange
			mockUow := new(persistence.MockUnitOfWork)
			mockWithdrawalRepo := new(persistence.MockTokenWithdrawalRepository)
			mockTransactionRepo := new(persistence.MockTransactionRepository)
			mockTimeProvider := new(core.MockTimeProvider)
			mockLogger := new(core.MockLogger)

			w := pendingWithdrawal()

			mockUow.On("Begin", ctx).Return(ctx, nil)
			mockUow.On("GetTokenWithdrawalRepository", ctx).Return(mockWithdrawalRepo)
			mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
			mockUow.On("Rollback", ctx).Return(nil)

			mockWithdrawalRepo.On("GetByID", ctx, withdrawalID).Return(w, nil)
			mockTransactionRepo.On("GetByID", ctx, transactionID).Return(nil, errs.ErrTransactionNotFound)

			settlement := NewTokenSettlement(mockUow, mockTimeProvider, mockLogger)

			// Act
			result, err := settlement.Settle(ctx, withdrawalID, action, "UTR-900")

			// Assert
			assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
			assert.Nil(t, result)
			assert.Equal(t, entity.WithdrawalPending, w.Status)
			mockWithdrawalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			mockUow.AssertNotCalled(t, "Commit", mock.Anything)
			mockUow.AssertExpectations(t)
		}
	})

	t.Run("should roll back when the vested balance is insufficient", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockWithdrawalRepo := new(persistence.MockTokenWithdrawalRepository)
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		w := pendingWithdrawal()
		w.Tokens = 50
		txn := linkedTransaction()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetTokenWithdrawalRepository", ctx).Return(mockWithdrawalRepo)
		mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
		mockUow.On("Rollback", ctx).Return(nil)

		mockWithdrawalRepo.On("GetByID", ctx, withdrawalID).Return(w, nil)
		mockTransactionRepo.On("GetByID", ctx, transactionID).Return(txn, nil)
		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)

		settlement := NewTokenSettlement(mockUow, mockTimeProvider, mockLogger)

		// Act
		result, err := settlement.Settle(ctx, withdrawalID, "approved", "UTR-900")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInsufficientTokens)
		assert.Nil(t, result)
		assert.InDelta(t, 30.0, txn.TokensAvailable, 1e-9)
		mockWithdrawalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)

		mockUow.AssertExpectations(t)
		mockWithdrawalRepo.AssertExpectations(t)
		mockTransactionRepo.AssertExpectations(t)
	})

	t.Run("should roll back when approval lacks a settlement reference", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockWithdrawalRepo := new(persistence.MockTokenWithdrawalRepository)
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		w := pendingWithdrawal()
		txn := linkedTransaction()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetTokenWithdrawalRepository", ctx).Return(mockWithdrawalRepo)
		mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
		mockUow.On("Rollback", ctx).Return(nil)

		mockWithdrawalRepo.On("GetByID", ctx, withdrawalID).Return(w, nil)
		mockTransactionRepo.On("GetByID", ctx, transactionID).Return(txn, nil)

		settlement := NewTokenSettlement(mockUow, mockTimeProvider, mockLogger)

		// Act
		result, err := settlement.Settle(ctx, withdrawalID, "approved", "")

		// Assert
		assert.ErrorIs(t, err, errs.ErrMissingSettlementRef)
		assert.Nil(t, result)
		mockTransactionRepo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
		mockUow.AssertExpectations(t)
	})

	t.Run("should roll back on an already resolved withdrawal", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockWithdrawalRepo := new(persistence.MockTokenWithdrawalRepository)
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		w := pendingWithdrawal()
		w.Status = entity.WithdrawalApproved
		txn := linkedTransaction()

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetTokenWithdrawalRepository", ctx).Return(mockWithdrawalRepo)
		mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
		mockUow.On("Rollback", ctx).Return(nil)

		mockWithdrawalRepo.On("GetByID", ctx, withdrawalID).Return(w, nil)
		mockTransactionRepo.On("GetByID", ctx, transactionID).Return(txn, nil)

		settlement := NewTokenSettlement(mockUow, mockTimeProvider, mockLogger)

		// Act
		result, err := settlement.Settle(ctx, withdrawalID, "approved", "UTR-900")

		// Assert
		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Nil(t, result)
		mockTransactionRepo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)
		mockUow.AssertExpectations(t)
	})

	t.Run("should roll back when the withdrawal doesn't exist", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockWithdrawalRepo := new(persistence.MockTokenWithdrawalRepository)
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUow.On("Begin", ctx).Return(ctx, nil)
		mockUow.On("GetTokenWithdrawalRepository", ctx).Return(mockWithdrawalRepo)
		mockUow.On("GetTransactionRepository", ctx).Return(mockTransactionRepo)
		mockUow.On("Rollback", ctx).Return(nil)

		mockWithdrawalRepo.On("GetByID", ctx, withdrawalID).Return(nil, errs.ErrWithdrawalNotFound)

		settlement := NewTokenSettlement(mockUow, mockTimeProvider, mockLogger)

		// Act
		result, err := settlement.Settle(ctx, withdrawalID, "approved", "UTR-900")

		// Assert
		assert.ErrorIs(t, err, errs.ErrWithdrawalNotFound)
		assert.Nil(t, result)
		mockUow.AssertExpectations(t)
	})

	t.Run("should short-circuit an invalid action before beginning a unit of work", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		settlement := NewTokenSettlement(mockUow, mockTimeProvider, mockLogger)

		// Act
		result, err := settlement.Settle(ctx, withdrawalID, "maybe", "UTR-900")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidAction)
		assert.Nil(t, result)
		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}
