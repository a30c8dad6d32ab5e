package lifecycle

import (
	"context"
	"fmt"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/port/persistence"
	"github.com/stakeway/backoffice/internal/domain/usecase/commission"
	"github.com/stakeway/backoffice/internal/domain/usecase/vesting"
)

// Result reports the outcome of a resolve operation to the caller
type Result struct {
	Status  entity.TransactionStatus
	Message string
}

// Service drives the purchase transaction state machine: pending transactions
// are approved or rejected exactly once, and approval fans out into the
// investment record, the commission chain and the vesting baseline.
type Service struct {
	transactionRepo persistence.TransactionRepository
	userRepo        persistence.UserRepository
	distributor     *commission.Distributor
	vestingEngine   *vesting.Engine
	logger          coreport.Logger
}

// NewService creates a transaction lifecycle service
func NewService(
	transactionRepo persistence.TransactionRepository,
	userRepo persistence.UserRepository,
	distributor *commission.Distributor,
	vestingEngine *vesting.Engine,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		distributor:     distributor,
		vestingEngine:   vestingEngine,
		logger:          logger,
	}
}

// Resolve applies an admin approve/reject decision to a pending transaction.
//
// On approve: the status is persisted first, then the purchase price is added
// to the buyer's invested total, the sponsor chain is paid, and one vesting
// accrual pass establishes the baseline watermark. Commission hops commit
// independently and a failure there does not unwind the approval.
//
// Possible errors:
// - ErrInvalidAction: if action is neither "approved" nor "rejected"
// - ErrTransactionNotFound: if the transaction doesn't exist
// - ErrAlreadyResolved: if the transaction is terminal (reports its status)
func (s *Service) Resolve(ctx context.Context, transactionID uint64, action string) (*Result, error) {
	if !entity.IsValidAction(action) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidAction, action)
	}

	if entity.ResolveAction(action) == entity.ActionReject {
		return s.reject(ctx, transactionID)
	}
	return s.approve(ctx, transactionID)
}

func (s *Service) approve(ctx context.Context, transactionID uint64) (*Result, error) {
	// The status transition runs under the row lock, so of two racing
	// approvals exactly one commits and the other sees the terminal state.
	txn, err := s.transactionRepo.Mutate(ctx, transactionID, func(t *entity.Transaction) error {
		return t.Approve()
	})
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.RecordInvestment(ctx, txn.UserID, txn.PriceCents)
	if err != nil {
		return nil, err
	}

	if user.Sponsor != "" {
		if err := s.distributor.Distribute(ctx, user.Sponsor, txn.PriceCents); err != nil {
			// The approval and any commissions paid so far stand; report the
			// truncation but do not unwind.
			s.logger.Error("Commission distribution failed after approval", map[string]any{
				"transaction_id": txn.ID,
				"sponsor":        user.Sponsor,
				"error":          err.Error(),
			})
		}
	}

	if err := s.vestingEngine.Accrue(ctx, txn.ID); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction approved", map[string]any{
		"transaction_id": txn.ID,
		"username":       txn.Username,
		"package":        txn.PackageName,
		"price":          txn.Price(),
	})

	return &Result{
		Status:  entity.StatusApproved,
		Message: "Transaction approved successfully",
	}, nil
}

func (s *Service) reject(ctx context.Context, transactionID uint64) (*Result, error) {
	txn, err := s.transactionRepo.Mutate(ctx, transactionID, func(t *entity.Transaction) error {
		return t.Reject()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction rejected", map[string]any{
		"transaction_id": txn.ID,
		"username":       txn.Username,
	})

	return &Result{
		Status:  entity.StatusRejected,
		Message: "Transaction rejected successfully",
	}, nil
}

// Get returns one transaction, running a vesting accrual pass first so the
// caller always sees the current vested balance
func (s *Service) Get(ctx context.Context, transactionID uint64) (*entity.Transaction, error) {
	if err := s.vestingEngine.Accrue(ctx, transactionID); err != nil {
		return nil, err
	}
	return s.transactionRepo.GetByID(ctx, transactionID)
}

// List returns all transactions, newest first
func (s *Service) List(ctx context.Context) ([]*entity.Transaction, error) {
	return s.transactionRepo.List(ctx)
}

// ListPending returns transactions still awaiting an admin decision
func (s *Service) ListPending(ctx context.Context) ([]*entity.Transaction, error) {
	return s.transactionRepo.ListByStatus(ctx, entity.StatusPending)
}
