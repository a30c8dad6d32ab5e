package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// MockUserRepository is a mock implementation of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method
func (m *MockUserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// GetByUsername mocks the GetByUsername method
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// List mocks the List method
func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

// Update mocks the Update method
func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// CreditCommission mocks the CreditCommission method
func (m *MockUserRepository) CreditCommission(ctx context.Context, userID uint64, cents int64) (*entity.User, error) {
	args := m.Called(ctx, userID, cents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// RecordInvestment mocks the RecordInvestment method
func (m *MockUserRepository) RecordInvestment(ctx context.Context, userID uint64, priceCents int64) (*entity.User, error) {
	args := m.Called(ctx, userID, priceCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// DebitWallet mocks the DebitWallet method
func (m *MockUserRepository) DebitWallet(ctx context.Context, userID uint64, cents int64) (*entity.User, error) {
	args := m.Called(ctx, userID, cents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
