package persistence

import (
	"context"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// TokenWithdrawalRepository defines methods to interact with token withdrawal requests
type TokenWithdrawalRepository interface {
	// GetByID retrieves a token withdrawal by ID
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: if no withdrawal with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.TokenWithdrawal, error)

	// List returns all token withdrawals, newest first
	List(ctx context.Context) ([]*entity.TokenWithdrawal, error)

	// Update persists status and settlement reference changes
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: if the withdrawal doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, withdrawal *entity.TokenWithdrawal) error
}

// WalletWithdrawalRepository defines methods to interact with wallet withdrawal requests
type WalletWithdrawalRepository interface {
	// GetByID retrieves a wallet withdrawal by ID
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: if no withdrawal with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.WalletWithdrawal, error)

	// List returns all wallet withdrawals, newest first
	List(ctx context.Context) ([]*entity.WalletWithdrawal, error)

	// Update persists status and settlement reference changes
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: if the withdrawal doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, withdrawal *entity.WalletWithdrawal) error
}
