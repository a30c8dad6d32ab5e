package persistence

import (
	"context"
)

// UnitOfWork coordinates the paired writes of withdrawal settlement: the
// withdrawal record and the debited entity (transaction or user) must commit
// together or not at all. Nothing else in the system spans entities in one
// transaction; commission hops deliberately commit one by one.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetTokenWithdrawalRepository returns a token withdrawal repository bound to the current transaction
	GetTokenWithdrawalRepository(ctx context.Context) TokenWithdrawalRepository

	// GetWalletWithdrawalRepository returns a wallet withdrawal repository bound to the current transaction
	GetWalletWithdrawalRepository(ctx context.Context) WalletWithdrawalRepository
}
