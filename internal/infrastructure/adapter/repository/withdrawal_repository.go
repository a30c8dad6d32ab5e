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
)

// TokenWithdrawalRepository implements the TokenWithdrawalRepository port using GORM
type TokenWithdrawalRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTokenWithdrawalRepository creates a new TokenWithdrawalRepository instance
func NewTokenWithdrawalRepository(db *gorm.DB, logger coreport.Logger) *TokenWithdrawalRepository {
	return &TokenWithdrawalRepository{db: db, logger: logger}
}

func tokenWithdrawalModelToEntity(m *model.TokenWithdrawal) *entity.TokenWithdrawal {
	return &entity.TokenWithdrawal{
		ID:            m.ID,
		UserID:        m.UserID,
		Username:      m.Username,
		TransactionID: m.TransactionID,
		Tokens:        m.Tokens,
		ValueCents:    m.ValueCents,
		UpiID:         m.UpiID,
		SettlementRef: m.SettlementRef,
		Status:        entity.WithdrawalStatus(m.Status),
		RequestedAt:   m.RequestedAt,
	}
}

// GetByID retrieves a token withdrawal by ID
func (r *TokenWithdrawalRepository) GetByID(ctx context.Context, id uint64) (*entity.TokenWithdrawal, error) {
	var wModel model.TokenWithdrawal
	result := r.db.WithContext(ctx).First(&wModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return tokenWithdrawalModelToEntity(&wModel), nil
}

// List returns all token withdrawals, newest first
func (r *TokenWithdrawalRepository) List(ctx context.Context) ([]*entity.TokenWithdrawal, error) {
	var wModels []model.TokenWithdrawal
	result := r.db.WithContext(ctx).Order("requested_at DESC").Find(&wModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	withdrawals := make([]*entity.TokenWithdrawal, 0, len(wModels))
	for i := range wModels {
		withdrawals = append(withdrawals, tokenWithdrawalModelToEntity(&wModels[i]))
	}
	return withdrawals, nil
}

// Update persists status and settlement reference changes
func (r *TokenWithdrawalRepository) Update(ctx context.Context, withdrawal *entity.TokenWithdrawal) error {
	result := r.db.WithContext(ctx).Model(&model.TokenWithdrawal{}).
		Where("id = ?", withdrawal.ID).
		Updates(map[string]any{
			"status":         string(withdrawal.Status),
			"settlement_ref": withdrawal.SettlementRef,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrWithdrawalNotFound
	}
	return nil
}

// WalletWithdrawalRepository implements the WalletWithdrawalRepository port using GORM
type WalletWithdrawalRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewWalletWithdrawalRepository creates a new WalletWithdrawalRepository instance
func NewWalletWithdrawalRepository(db *gorm.DB, logger coreport.Logger) *WalletWithdrawalRepository {
	return &WalletWithdrawalRepository{db: db, logger: logger}
}

func walletWithdrawalModelToEntity(m *model.WalletWithdrawal) *entity.WalletWithdrawal {
	return &entity.WalletWithdrawal{
		ID:            m.ID,
		UserID:        m.UserID,
		Username:      m.Username,
		AmountCents:   m.AmountCents,
		UpiID:         m.UpiID,
		SettlementRef: m.SettlementRef,
		Status:        entity.WithdrawalStatus(m.Status),
		RequestedAt:   m.RequestedAt,
	}
}

// GetByID retrieves a wallet withdrawal by ID
func (r *WalletWithdrawalRepository) GetByID(ctx context.Context, id uint64) (*entity.WalletWithdrawal, error) {
	var wModel model.WalletWithdrawal
	result := r.db.WithContext(ctx).First(&wModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return walletWithdrawalModelToEntity(&wModel), nil
}

// List returns all wallet withdrawals, newest first
func (r *WalletWithdrawalRepository) List(ctx context.Context) ([]*entity.WalletWithdrawal, error) {
	var wModels []model.WalletWithdrawal
	result := r.db.WithContext(ctx).Order("requested_at DESC").Find(&wModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	withdrawals := make([]*entity.WalletWithdrawal, 0, len(wModels))
	for i := range wModels {
		withdrawals = append(withdrawals, walletWithdrawalModelToEntity(&wModels[i]))
	}
	return withdrawals, nil
}

// Update persists status and settlement reference changes
func (r *WalletWithdrawalRepository) Update(ctx context.Context, withdrawal *entity.WalletWithdrawal) error {
	result := r.db.WithContext(ctx).Model(&model.WalletWithdrawal{}).
		Where("id = ?", withdrawal.ID).
		Updates(map[string]any{
			"status":         string(withdrawal.Status),
			"settlement_ref": withdrawal.SettlementRef,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrWithdrawalNotFound
	}
	return nil
}
