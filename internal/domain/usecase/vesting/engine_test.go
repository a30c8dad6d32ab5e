package vesting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	"github.com/stakeway/backoffice/mocks/port/core"
	"github.com/stakeway/backoffice/mocks/port/persistence"
)

func TestEngine_Accrue(t *testing.T) {
	// Define fixed time for consistent testing
	purchasedAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	ctx := context.Background()
	transactionID := uint64(42)

	// 100 tokens over 100 days vests one token per day.
	approvedTransaction := func() *entity.Transaction {
		return &entity.Transaction{
			ID:                 transactionID,
			Tokens:             100,
			StackingPeriodDays: 100,
			PurchasedAt:        purchasedAt,
			LastAccruedAt:      purchasedAt,
			Status:             entity.StatusApproved,
		}
	}

	t.Run("should accrue elapsed windows under the row lock", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(purchasedAt.Add(72 * time.Hour))

		txn := approvedTransaction()
		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)
		mockLogger.On("Debug", "Vested tokens accrued", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockTransactionRepo, mockTimeProvider, mockLogger)

		// Act
		err := engine.Accrue(ctx, transactionID)

		// Assert
		assert.NoError(t, err)
		assert.InDelta(t, 3.0, txn.TokensAvailable, 1e-9)

		mockTransactionRepo.AssertExpectations(t)
		mockTimeProvider.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should stay quiet when nothing vested", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(purchasedAt.Add(12 * time.Hour))

		txn := approvedTransaction()
		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)

		engine := NewEngine(mockTransactionRepo, mockTimeProvider, mockLogger)

		// Act
		err := engine.Accrue(ctx, transactionID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, float64(0), txn.TokensAvailable)
		mockLogger.AssertNotCalled(t, "Debug", mock.Anything, mock.Anything)
		mockTransactionRepo.AssertExpectations(t)
	})

	t.Run("should ignore an unknown transaction", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(nil, errs.ErrTransactionNotFound)

		engine := NewEngine(mockTransactionRepo, mockTimeProvider, mockLogger)

		// Act
		err := engine.Accrue(ctx, transactionID)

		// Assert
		assert.NoError(t, err)
		mockTransactionRepo.AssertExpectations(t)
	})

	t.Run("should return other repository errors", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(nil, errs.ErrDatabaseConnection)

		engine := NewEngine(mockTransactionRepo, mockTimeProvider, mockLogger)

		// Act
		err := engine.Accrue(ctx, transactionID)

		// Assert
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		mockTransactionRepo.AssertExpectations(t)
	})
}
