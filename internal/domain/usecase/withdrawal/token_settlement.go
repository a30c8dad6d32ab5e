package withdrawal

import (
	"context"
	"fmt"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/port/persistence"
)

// Result reports the outcome of a settlement to the caller
type Result struct {
	Status  entity.WithdrawalStatus
	Message string
}

// TokenSettlement settles token withdrawal requests against the vested
// balance of their linked transaction. The withdrawal record and the debited
// transaction commit together through the unit of work; a failure on either
// side leaves both untouched.
type TokenSettlement struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTokenSettlement creates a token withdrawal settlement service
func NewTokenSettlement(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TokenSettlement {
	return &TokenSettlement{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Settle applies an admin approve/reject decision to a token withdrawal.
// Approval runs a vesting accrual pass on the linked transaction first, then
// checks the requested quantity against the freshly vested balance.
//
// Possible errors:
// - ErrInvalidAction: if action is neither "approved" nor "rejected"
// - ErrWithdrawalNotFound: if the withdrawal doesn't exist
// - ErrTransactionNotFound: if the linked transaction doesn't exist
// - ErrAlreadyResolved: if the withdrawal is terminal
// - ErrInsufficientTokens: if the request exceeds the vested balance
// - ErrMissingSettlementRef: if approval lacks a settlement reference
func (s *TokenSettlement) Settle(ctx context.Context, withdrawalID uint64, action, settlementRef string) (*Result, error) {
	if !entity.IsValidAction(action) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidAction, action)
	}

	uowCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.settle(uowCtx, withdrawalID, entity.ResolveAction(action), settlementRef)
	if err != nil {
		if rbErr := s.uow.Rollback(uowCtx); rbErr != nil {
			s.logger.Error("Rollback failed after settlement error", map[string]any{
				"withdrawal_id": withdrawalID,
				"error":         rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(uowCtx); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *TokenSettlement) settle(ctx context.Context, withdrawalID uint64, action entity.ResolveAction, settlementRef string) (*Result, error) {
	withdrawalRepo := s.uow.GetTokenWithdrawalRepository(ctx)
	transactionRepo := s.uow.GetTransactionRepository(ctx)

	w, err := withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	// A withdrawal whose linked transaction is gone fails before either
	// action branch.
	if _, err := transactionRepo.GetByID(ctx, w.TransactionID); err != nil {
		return nil, err
	}

	if action == entity.ActionReject {
		if err := w.Reject(); err != nil {
			return nil, err
		}
		if err := withdrawalRepo.Update(ctx, w); err != nil {
			return nil, err
		}

		s.logger.Info("Token withdrawal rejected", map[string]any{
			"withdrawal_id": w.ID,
			"username":      w.Username,
		})
		return &Result{Status: entity.WithdrawalRejected, Message: "Withdrawal rejected successfully"}, nil
	}

	if err := w.Approve(settlementRef); err != nil {
		return nil, err
	}

	// Accrual and the availability check run under the transaction row lock,
	// so a racing accrual pass cannot overwrite the debit.
	txn, err := transactionRepo.Mutate(ctx, w.TransactionID, func(t *entity.Transaction) error {
		t.Accrue(s.timeProvider.Now())
		return t.WithdrawTokens(w.Tokens)
	})
	if err != nil {
		return nil, err
	}

	if err := withdrawalRepo.Update(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("Token withdrawal approved", map[string]any{
		"withdrawal_id":    w.ID,
		"transaction_id":   txn.ID,
		"username":         w.Username,
		"tokens":           w.Tokens,
		"tokens_available": txn.TokensAvailable,
		"settlement_ref":   settlementRef,
	})
	return &Result{Status: entity.WithdrawalApproved, Message: "Withdrawal approved successfully"}, nil
}

// List returns all token withdrawals, newest first
func (s *TokenSettlement) List(ctx context.Context) ([]*entity.TokenWithdrawal, error) {
	return s.uow.GetTokenWithdrawalRepository(ctx).List(ctx)
}
