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

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// userModelToEntity converts a user model to a domain entity
func userModelToEntity(m *model.User) *entity.User {
	user := &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Sponsor:     m.Sponsor,
		Referrals:   m.Referrals,
		Level:       m.Level,
		TokenWallet: m.TokenWallet,
		Packages:    m.Packages,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	user.SetBalances(m.WalletCents, m.WalletRecordCents, m.TotalInvestedCents)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"operation": operation,
			"user":      key,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user":  key,
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return userModelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by unique username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error, username)
	}
	return userModelToEntity(&userModel), nil
}

// List returns all users
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("username").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, nil)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userModelToEntity(&userModels[i]))
	}
	return users, nil
}

// Update persists profile fields. Balance columns are excluded on purpose;
// they only move through the atomic methods below.
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":        user.Email,
			"phone_number": user.PhoneNumber,
			"sponsor":      user.Sponsor,
			"level":        user.Level,
			"updated_at":   r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// lockedUpdate runs fn against a row-locked copy of the user inside one
// database transaction, then writes the balance columns back. This is the
// single read-check-write unit every balance movement goes through.
func (r *UserRepository) lockedUpdate(ctx context.Context, userID uint64, fn func(*model.User) error) (*entity.User, error) {
	var userModel model.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, userID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		if err := fn(&userModel); err != nil {
			return err
		}
		userModel.UpdatedAt = r.timeProvider.Now()

		return tx.Model(&userModel).Updates(map[string]any{
			"wallet_cents":         userModel.WalletCents,
			"wallet_record_cents":  userModel.WalletRecordCents,
			"total_invested_cents": userModel.TotalInvestedCents,
			"packages":             userModel.Packages,
			"updated_at":           userModel.UpdatedAt,
		}).Error
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) || errors.Is(err, errs.ErrInsufficientBalance) {
			return nil, err
		}
		return nil, r.handleDatabaseError("updating user balances", err, userID)
	}
	return userModelToEntity(&userModel), nil
}

// CreditCommission atomically adds a commission to wallet and lifetime record
func (r *UserRepository) CreditCommission(ctx context.Context, userID uint64, cents int64) (*entity.User, error) {
	user, err := r.lockedUpdate(ctx, userID, func(m *model.User) error {
		m.WalletCents += cents
		m.WalletRecordCents += cents
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Commission credited to wallet", map[string]any{
		"user_id":    userID,
		"commission": entity.CentsToAmount(cents),
		"wallet":     user.WalletAmount(),
	})
	return user, nil
}

// RecordInvestment atomically adds an approved purchase to the invested total
// and purchase history
func (r *UserRepository) RecordInvestment(ctx context.Context, userID uint64, priceCents int64) (*entity.User, error) {
	return r.lockedUpdate(ctx, userID, func(m *model.User) error {
		m.TotalInvestedCents += priceCents
		m.Packages = append(m.Packages, priceCents)
		return nil
	})
}

// DebitWallet atomically removes an approved withdrawal from the wallet,
// failing inside the lock if the balance is insufficient
func (r *UserRepository) DebitWallet(ctx context.Context, userID uint64, cents int64) (*entity.User, error) {
	return r.lockedUpdate(ctx, userID, func(m *model.User) error {
		if m.WalletCents < cents {
			return errs.NewInsufficientBalanceError(userID,
				entity.CentsToAmount(cents), entity.CentsToAmount(m.WalletCents))
		}
		m.WalletCents -= cents
		return nil
	})
}
