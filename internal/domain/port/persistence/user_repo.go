package persistence

import (
	"context"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// UserRepository defines methods to interact with platform members.
// The Credit/Record/Debit methods are atomic read-check-write units: each one
// locks the user row, applies the change and commits independently, which is
// what lets a commission chain pay out partially and still survive a later
// failure further up the chain.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with this ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by unique username.
	// Sponsor chains are traversed through this lookup.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with this username exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns all users for the admin overview
	List(ctx context.Context) ([]*entity.User, error)

	// Update persists profile fields (sponsor, level, contact details).
	// Balance fields are not written here; they only move through the
	// atomic methods below.
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, user *entity.User) error

	// CreditCommission atomically adds a commission to both wallet and the
	// lifetime wallet record of one user
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	CreditCommission(ctx context.Context, userID uint64, cents int64) (*entity.User, error)

	// RecordInvestment atomically adds an approved purchase price to the
	// user's invested total and purchase history
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	RecordInvestment(ctx context.Context, userID uint64, priceCents int64) (*entity.User, error)

	// DebitWallet atomically removes an approved wallet withdrawal from the
	// spendable balance, leaving the lifetime record untouched
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrInsufficientBalance: if the wallet holds less than the debit
	// - ErrDatabaseConnection: if the database is unreachable
	DebitWallet(ctx context.Context, userID uint64, cents int64) (*entity.User, error)
}
