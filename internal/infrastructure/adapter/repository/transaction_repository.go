package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{db: db, logger: logger}
}

func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                 m.ID,
		UserID:             m.UserID,
		Username:           m.Username,
		PackageID:          m.PackageID,
		PackageName:        m.PackageName,
		PriceCents:         m.PriceCents,
		Tokens:             m.Tokens,
		TokensWithdrawn:    m.TokensWithdrawn,
		TokensAvailable:    m.TokensAvailable,
		MinTokensRequired:  m.MinTokensRequired,
		StackingPeriodDays: m.StackingPeriodDays,
		UTR:                m.UTR,
		PurchasedAt:        m.PurchasedAt,
		LastAccruedAt:      m.LastAccruedAt,
		Status:             entity.TransactionStatus(m.Status),
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, id uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": id,
		"error":          err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).First(&txnModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, id)
	}
	return transactionModelToEntity(&txnModel), nil
}

// List returns all transactions, newest first
func (r *TransactionRepository) List(ctx context.Context) ([]*entity.Transaction, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

// ListByStatus returns transactions in the given state, newest first
func (r *TransactionRepository) ListByStatus(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("status = ?", string(status)))
}

func (r *TransactionRepository) list(ctx context.Context, query *gorm.DB) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	result := query.Order("purchased_at DESC").Find(&txnModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		transactions = append(transactions, transactionModelToEntity(&txnModels[i]))
	}
	return transactions, nil
}

// Create saves a new pending transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txnModel := model.Transaction{
		UserID:             transaction.UserID,
		Username:           transaction.Username,
		PackageID:          transaction.PackageID,
		PackageName:        transaction.PackageName,
		PriceCents:         transaction.PriceCents,
		Tokens:             transaction.Tokens,
		TokensWithdrawn:    transaction.TokensWithdrawn,
		TokensAvailable:    transaction.TokensAvailable,
		MinTokensRequired:  transaction.MinTokensRequired,
		StackingPeriodDays: transaction.StackingPeriodDays,
		UTR:                transaction.UTR,
		PurchasedAt:        transaction.PurchasedAt,
		LastAccruedAt:      transaction.LastAccruedAt,
		Status:             string(transaction.Status),
	}

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error, 0)
	}

	transaction.ID = txnModel.ID
	return nil
}

// Mutate runs fn against a row-locked copy of the transaction inside one
// database transaction, then writes the mutable columns back. This is the
// single read-check-write unit every status transition and token movement
// goes through; fn sees the committed row, so a duplicate approval fails its
// terminal-state check here instead of committing twice.
func (r *TransactionRepository) Mutate(ctx context.Context, id uint64, fn func(*entity.Transaction) error) (*entity.Transaction, error) {
	var (
		txn   *entity.Transaction
		fnErr error
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txnModel model.Transaction
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txnModel, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrTransactionNotFound
			}
			return result.Error
		}

		txn = transactionModelToEntity(&txnModel)
		before := *txn
		if err := fn(txn); err != nil {
			fnErr = err
			return err
		}
		if *txn == before {
			return nil
		}

		return tx.Model(&txnModel).Updates(map[string]any{
			"status":           string(txn.Status),
			"tokens_withdrawn": txn.TokensWithdrawn,
			"tokens_available": txn.TokensAvailable,
			"last_accrued_at":  txn.LastAccruedAt,
		}).Error
	})

	if err != nil {
		if fnErr != nil {
			return nil, fnErr
		}
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, r.handleDatabaseError("mutating transaction", err, id)
	}
	return txn, nil
}
