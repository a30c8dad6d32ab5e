package persistence

import (
	"context"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// TransactionRepository defines methods to interact with purchase transactions
type TransactionRepository interface {
	// GetByID retrieves a transaction by ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// List returns all transactions, newest first
	List(ctx context.Context) ([]*entity.Transaction, error)

	// ListByStatus returns transactions in the given state, newest first
	ListByStatus(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error)

	// Create saves a new pending transaction
	//
	// Possible errors:
	// - ErrUserNotFound: if the referenced user does not exist
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Mutate applies fn to a row-locked copy of the transaction inside one
	// database transaction and persists the resulting status, vesting and
	// token movements. The lock makes every status transition and token
	// movement a single read-check-write unit: a concurrent duplicate
	// approval or a racing accrual observes the committed state, not the
	// state both callers started from. An error from fn aborts the write
	// and surfaces unchanged.
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	// - any error returned by fn
	Mutate(ctx context.Context, id uint64, fn func(*entity.Transaction) error) (*entity.Transaction, error)
}

// PackageRepository defines methods to interact with the package catalog
type PackageRepository interface {
	// GetByID retrieves a catalog package by ID
	//
	// Possible errors:
	// - ErrPackageNotFound: if no package with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Package, error)

	// List returns the full catalog
	List(ctx context.Context) ([]*entity.Package, error)

	// Create adds a catalog entry
	Create(ctx context.Context, pkg *entity.Package) error

	// Update edits a catalog entry. Existing transactions keep their copied
	// price and stacking period.
	//
	// Possible errors:
	// - ErrPackageNotFound: if the package doesn't exist
	Update(ctx context.Context, pkg *entity.Package) error
}
