package withdrawal

import (
	"context"
	"fmt"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/port/persistence"
)

// WalletSettlement settles wallet withdrawal requests against the user's
// spendable commission balance. The withdrawal record and the debited user
// commit together through the unit of work.
type WalletSettlement struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWalletSettlement creates a wallet withdrawal settlement service
func NewWalletSettlement(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *WalletSettlement {
	return &WalletSettlement{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Settle applies an admin approve/reject decision to a wallet withdrawal.
// Approval debits the user's wallet; the lifetime wallet record is never
// reduced.
//
// Possible errors:
// - ErrInvalidAction: if action is neither "approved" nor "rejected"
// - ErrWithdrawalNotFound: if the withdrawal doesn't exist
// - ErrUserNotFound: if the requesting user doesn't exist
// - ErrAlreadyResolved: if the withdrawal is terminal
// - ErrInsufficientBalance: if the request exceeds the wallet
func (s *WalletSettlement) Settle(ctx context.Context, withdrawalID uint64, action, settlementRef string) (*Result, error) {
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

func (s *WalletSettlement) settle(ctx context.Context, withdrawalID uint64, action entity.ResolveAction, settlementRef string) (*Result, error) {
	withdrawalRepo := s.uow.GetWalletWithdrawalRepository(ctx)
	userRepo := s.uow.GetUserRepository(ctx)

	w, err := withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	if action == entity.ActionReject {
		if err := w.Reject(); err != nil {
			return nil, err
		}
		if err := withdrawalRepo.Update(ctx, w); err != nil {
			return nil, err
		}

		s.logger.Info("Wallet withdrawal rejected", map[string]any{
			"withdrawal_id": w.ID,
			"username":      w.Username,
		})
		return &Result{Status: entity.WithdrawalRejected, Message: "Withdrawal rejected successfully"}, nil
	}

	if w.IsResolved() {
		return nil, errs.NewAlreadyResolvedError("withdrawal", w.ID, string(w.Status))
	}

	user, err := userRepo.DebitWallet(ctx, w.UserID, w.AmountCents)
	if err != nil {
		return nil, err
	}

	if err := w.Approve(settlementRef); err != nil {
		return nil, err
	}
	if err := withdrawalRepo.Update(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("Wallet withdrawal approved", map[string]any{
		"withdrawal_id":  w.ID,
		"username":       w.Username,
		"amount":         w.Amount(),
		"wallet":         user.WalletAmount(),
		"settlement_ref": settlementRef,
	})
	return &Result{Status: entity.WithdrawalApproved, Message: "Withdrawal approved successfully"}, nil
}

// List returns all wallet withdrawals, newest first
func (s *WalletSettlement) List(ctx context.Context) ([]*entity.WalletWithdrawal, error) {
	return s.uow.GetWalletWithdrawalRepository(ctx).List(ctx)
}
