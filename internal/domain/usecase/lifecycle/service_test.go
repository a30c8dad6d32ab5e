package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	"github.com/stakeway/backoffice/internal/domain/usecase/commission"
	"github.com/stakeway/backoffice/internal/domain/usecase/vesting"
	"github.com/stakeway/backoffice/mocks/port/core"
	"github.com/stakeway/backoffice/mocks/port/persistence"
)

func TestService_Resolve(t *testing.T) {
	// Define fixed time for consistent testing
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	// Common test variables
	ctx := context.Background()
	transactionID := uint64(42)

	// pendingTransaction builds a fresh pending purchase. PurchasedAt equals
	// the fixed clock, so the post-approval accrual pass is a no-op.
	pendingTransaction := func() *entity.Transaction {
		return &entity.Transaction{
			ID:                 transactionID,
			UserID:             7,
			Username:           "alice",
			PackageID:          3,
			PackageName:        "Growth",
			PriceCents:         100000,
			Tokens:             500,
			StackingPeriodDays: 365,
			PurchasedAt:        fixedTime,
			LastAccruedAt:      fixedTime,
			Status:             entity.StatusPending,
		}
	}

	newService := func(
		transactionRepo *persistence.MockTransactionRepository,
		userRepo *persistence.MockUserRepository,
		timeProvider *core.MockTimeProvider,
		logger *core.MockLogger,
	) *Service {
		distributor := commission.NewDistributor(userRepo, logger)
		engine := vesting.NewEngine(transactionRepo, timeProvider, logger)
		return NewService(transactionRepo, userRepo, distributor, engine, logger)
	}

	t.Run("should approve a pending transaction and pay the sponsor chain", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		txn := pendingTransaction()
		buyer := &entity.User{ID: 7, Username: "alice", Sponsor: "bob", Level: 1}
		sponsor := &entity.User{ID: 8, Username: "bob", Sponsor: "", Level: 0}

		// The same row backs the approval and the follow-up accrual pass.
		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)
		mockUserRepo.On("RecordInvestment", ctx, uint64(7), int64(100000)).Return(buyer, nil)
		mockUserRepo.On("GetByUsername", ctx, "bob").Return(sponsor, nil)
		mockUserRepo.On("CreditCommission", ctx, uint64(8), int64(7000)).Return(sponsor, nil)

		mockLogger.On("Info", "Commission credited", mock.AnythingOfType("map[string]interface {}")).Return()
		mockLogger.On("Info", "Transaction approved", mock.AnythingOfType("map[string]interface {}")).Return()

		service := newService(mockTransactionRepo, mockUserRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := service.Resolve(ctx, transactionID, "approved")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, result.Status)
		assert.Equal(t, "Transaction approved successfully", result.Message)
		assert.Equal(t, entity.StatusApproved, txn.Status)

		mockTransactionRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should approve without commissions when the buyer has no sponsor", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		txn := pendingTransaction()
		buyer := &entity.User{ID: 7, Username: "alice", Sponsor: "", Level: 0}

		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)
		mockUserRepo.On("RecordInvestment", ctx, uint64(7), int64(100000)).Return(buyer, nil)
		mockLogger.On("Info", "Transaction approved", mock.AnythingOfType("map[string]interface {}")).Return()

		service := newService(mockTransactionRepo, mockUserRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := service.Resolve(ctx, transactionID, "approved")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, result.Status)
		mockUserRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "CreditCommission", mock.Anything, mock.Anything, mock.Anything)

		mockTransactionRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should keep the approval when commission distribution fails", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		txn := pendingTransaction()
		buyer := &entity.User{ID: 7, Username: "alice", Sponsor: "bob", Level: 1}

		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)
		mockUserRepo.On("RecordInvestment", ctx, uint64(7), int64(100000)).Return(buyer, nil)
		mockUserRepo.On("GetByUsername", ctx, "bob").Return(nil, errs.ErrDatabaseConnection)

		mockLogger.On("Error", "Commission distribution failed after approval", mock.AnythingOfType("map[string]interface {}")).Return()
		mockLogger.On("Info", "Transaction approved", mock.AnythingOfType("map[string]interface {}")).Return()

		service := newService(mockTransactionRepo, mockUserRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := service.Resolve(ctx, transactionID, "approved")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, result.Status)

		mockTransactionRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject a pending transaction without touching balances", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		txn := pendingTransaction()
		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)
		mockLogger.On("Info", "Transaction rejected", mock.AnythingOfType("map[string]interface {}")).Return()

		service := newService(mockTransactionRepo, mockUserRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := service.Resolve(ctx, transactionID, "rejected")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.StatusRejected, result.Status)
		assert.Equal(t, "Transaction rejected successfully", result.Message)
		assert.Equal(t, entity.StatusRejected, txn.Status)
		mockUserRepo.AssertNotCalled(t, "RecordInvestment", mock.Anything, mock.Anything, mock.Anything)

		mockTransactionRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return error for an invalid action", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := newService(mockTransactionRepo, mockUserRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := service.Resolve(ctx, transactionID, "maybe")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidAction)
		assert.Nil(t, result)
		mockTransactionRepo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything)
	})

	t.Run("should return error when the transaction doesn't exist", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(nil, errs.ErrTransactionNotFound)

		service := newService(mockTransactionRepo, mockUserRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := service.Resolve(ctx, transactionID, "approved")

		// Assert
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Nil(t, result)
		mockTransactionRepo.AssertExpectations(t)
	})

	t.Run("should conflict on an already resolved transaction", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		txn := pendingTransaction()
		txn.Status = entity.StatusApproved
		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)

		service := newService(mockTransactionRepo, mockUserRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := service.Resolve(ctx, transactionID, "approved")

		// Assert
		assert.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Nil(t, result)
		mockUserRepo.AssertNotCalled(t, "RecordInvestment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should let only one of two duplicate approvals commit", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		// One shared row stands in for the locked database state: the second
		// approval observes the status the first one committed.
		txn := pendingTransaction()
		buyer := &entity.User{ID: 7, Username: "alice", Sponsor: "", Level: 0}

		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)
		mockUserRepo.On("RecordInvestment", ctx, uint64(7), int64(100000)).Return(buyer, nil)
		mockLogger.On("Info", "Transaction approved", mock.AnythingOfType("map[string]interface {}")).Return()

		service := newService(mockTransactionRepo, mockUserRepo, mockTimeProvider, mockLogger)

		// Act
		first, firstErr := service.Resolve(ctx, transactionID, "approved")
		second, secondErr := service.Resolve(ctx, transactionID, "approved")

		// Assert
		require.NoError(t, firstErr)
		assert.Equal(t, entity.StatusApproved, first.Status)

		assert.ErrorIs(t, secondErr, errs.ErrAlreadyResolved)
		assert.Nil(t, second)

		// The buyer's invested total is credited exactly once.
		mockUserRepo.AssertNumberOfCalls(t, "RecordInvestment", 1)
	})
}

func TestService_Get(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	transactionID := uint64(42)

	t.Run("should run an accrual pass before returning the transaction", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(persistence.MockTransactionRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		// Two full days have elapsed since the last accrual.
		mockTimeProvider.On("Now").Return(fixedTime.Add(48 * time.Hour))

		txn := &entity.Transaction{
			ID:                 transactionID,
			Tokens:             100,
			StackingPeriodDays: 100,
			PurchasedAt:        fixedTime,
			LastAccruedAt:      fixedTime,
			Status:             entity.StatusApproved,
		}

		mockTransactionRepo.On("Mutate", ctx, transactionID).Return(txn, nil)
		mockTransactionRepo.On("GetByID", ctx, transactionID).Return(txn, nil)
		mockLogger.On("Debug", "Vested tokens accrued", mock.AnythingOfType("map[string]interface {}")).Return()

		distributor := commission.NewDistributor(mockUserRepo, mockLogger)
		engine := vesting.NewEngine(mockTransactionRepo, mockTimeProvider, mockLogger)
		service := NewService(mockTransactionRepo, mockUserRepo, distributor, engine, mockLogger)

		// Act
		got, err := service.Get(ctx, transactionID)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got.TokensAvailable, 1e-9)

		mockTransactionRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})
}
