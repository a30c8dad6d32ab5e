package vesting

import (
	"context"
	"errors"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/port/persistence"
)

// Engine lazily vests purchased tokens. There is no scheduler: callers run an
// accrual pass before any read or settlement that depends on the vested
// balance, and correctness does not depend on how often they do (within the
// daily granularity of the accrual window).
type Engine struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewEngine creates a vesting engine
func NewEngine(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Accrue updates one transaction's vested balance for elapsed time and
// persists it when anything changed. Repeated calls inside one 24-hour window
// are no-ops, so the operation is idempotent at daily granularity. An unknown
// transaction id is a silent no-op per the operation contract.
func (e *Engine) Accrue(ctx context.Context, transactionID uint64) error {
	var changed bool
	txn, err := e.transactionRepo.Mutate(ctx, transactionID, func(t *entity.Transaction) error {
		changed = t.Accrue(e.timeProvider.Now())
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil
		}
		return err
	}

	if !changed {
		return nil
	}

	e.logger.Debug("Vested tokens accrued", map[string]any{
		"transaction_id":   txn.ID,
		"tokens_available": txn.TokensAvailable,
		"tokens_withdrawn": txn.TokensWithdrawn,
		"tokens_total":     txn.Tokens,
	})
	return nil
}
