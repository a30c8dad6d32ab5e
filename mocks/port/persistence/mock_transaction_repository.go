package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// MockTransactionRepository is a mock implementation of the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method
func (m *MockTransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

// List mocks the List method
func (m *MockTransactionRepository) List(ctx context.Context) ([]*entity.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// ListByStatus mocks the ListByStatus method
func (m *MockTransactionRepository) ListByStatus(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// Create mocks the Create method
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// Mutate mocks the Mutate method. The configured entity stands in for the
// locked row: fn runs against it, a fn error is returned unchanged, and the
// mutated entity is shared across calls configured with the same return value.
func (m *MockTransactionRepository) Mutate(ctx context.Context, id uint64, fn func(*entity.Transaction) error) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	txn := args.Get(0).(*entity.Transaction)
	if err := fn(txn); err != nil {
		return nil, err
	}
	return txn, args.Error(1)
}

// MockPackageRepository is a mock implementation of the PackageRepository interface
type MockPackageRepository struct {
	mock.Mock
}

// GetByID mocks the GetByID method
func (m *MockPackageRepository) GetByID(ctx context.Context, id uint64) (*entity.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Package), args.Error(1)
}

// List mocks the List method
func (m *MockPackageRepository) List(ctx context.Context) ([]*entity.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Package), args.Error(1)
}

// Create mocks the Create method
func (m *MockPackageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

// Update mocks the Update method
func (m *MockPackageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}
