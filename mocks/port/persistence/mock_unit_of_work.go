package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stakeway/backoffice/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork interface
type MockUnitOfWork struct {
	mock.Mock
}

// Begin mocks the Begin method
func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	return args.Get(0).(context.Context), args.Error(1)
}

// Commit mocks the Commit method
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Rollback mocks the Rollback method
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// GetUserRepository mocks the GetUserRepository method
func (m *MockUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.UserRepository)
}

// GetTransactionRepository mocks the GetTransactionRepository method
func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TransactionRepository)
}

// GetTokenWithdrawalRepository mocks the GetTokenWithdrawalRepository method
func (m *MockUnitOfWork) GetTokenWithdrawalRepository(ctx context.Context) persistence.TokenWithdrawalRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TokenWithdrawalRepository)
}

// GetWalletWithdrawalRepository mocks the GetWalletWithdrawalRepository method
func (m *MockUnitOfWork) GetWalletWithdrawalRepository(ctx context.Context) persistence.WalletWithdrawalRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.WalletWithdrawalRepository)
}
