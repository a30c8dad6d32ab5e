package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// MockTokenWithdrawalRepository is a mock implementation of the TokenWithdrawalRepository interface
type MockTokenWithdrawalRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method
func (m *MockTokenWithdrawalRepository) GetByID(ctx context.Context, id uint64) (*entity.TokenWithdrawal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TokenWithdrawal), args.Error(1)
}

// List mocks the List method
func (m *MockTokenWithdrawalRepository) List(ctx context.Context) ([]*entity.TokenWithdrawal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TokenWithdrawal), args.Error(1)
}

// Update mocks the Update method
func (m *MockTokenWithdrawalRepository) Update(ctx context.Context, withdrawal *entity.TokenWithdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

// MockWalletWithdrawalRepository is a mock implementation of the WalletWithdrawalRepository interface
type MockWalletWithdrawalRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method
func (m *MockWalletWithdrawalRepository) GetByID(ctx context.Context, id uint64) (*entity.WalletWithdrawal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WalletWithdrawal), args.Error(1)
}

// List mocks the List method
func (m *MockWalletWithdrawalRepository) List(ctx context.Context) ([]*entity.WalletWithdrawal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.WalletWithdrawal), args.Error(1)
}

// Update mocks the Update method
func (m *MockWalletWithdrawalRepository) Update(ctx context.Context, withdrawal *entity.WalletWithdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}
