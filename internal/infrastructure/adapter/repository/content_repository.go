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

// NotificationRepository implements the NotificationRepository port using GORM
type NotificationRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(db *gorm.DB, logger coreport.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, logger: logger}
}

// List returns all notifications, newest first
func (r *NotificationRepository) List(ctx context.Context) ([]*entity.Notification, error) {
	var nModels []model.Notification
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&nModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	notifications := make([]*entity.Notification, 0, len(nModels))
	for i := range nModels {
		notifications = append(notifications, &entity.Notification{
			ID:          nModels[i].ID,
			Message:     nModels[i].Message,
			IsImportant: nModels[i].IsImportant,
			CreatedAt:   nModels[i].CreatedAt,
		})
	}
	return notifications, nil
}

// Create inserts a new notification and back-fills the generated ID
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	nModel := model.Notification{
		Message:     notification.Message,
		IsImportant: notification.IsImportant,
		CreatedAt:   notification.CreatedAt,
	}
	result := r.db.WithContext(ctx).Create(&nModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	notification.ID = nModel.ID
	return nil
}

// Update rewrites the message and importance flag of an existing notification
func (r *NotificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	result := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", notification.ID).
		Updates(map[string]any{
			"message":      notification.Message,
			"is_important": notification.IsImportant,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a notification by ID
func (r *NotificationRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Notification{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// TermsRepository implements the TermsRepository port using GORM. The terms
// table holds at most one row.
type TermsRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTermsRepository creates a new TermsRepository instance
func NewTermsRepository(db *gorm.DB, logger coreport.Logger) *TermsRepository {
	return &TermsRepository{db: db, logger: logger}
}

// Get returns the current terms document
func (r *TermsRepository) Get(ctx context.Context) (*entity.Terms, error) {
	var tModel model.Terms
	result := r.db.WithContext(ctx).First(&tModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return &entity.Terms{ID: tModel.ID, Paragraph: tModel.Paragraph, UpdatedAt: tModel.UpdatedAt}, nil
}

// Upsert replaces the terms document, creating it if absent
func (r *TermsRepository) Upsert(ctx context.Context, terms *entity.Terms) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tModel model.Terms
		result := tx.First(&tModel)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
			}
			tModel = model.Terms{Paragraph: terms.Paragraph, UpdatedAt: terms.UpdatedAt}
			if err := tx.Create(&tModel).Error; err != nil {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
			}
			terms.ID = tModel.ID
			return nil
		}

		update := tx.Model(&model.Terms{}).Where("id = ?", tModel.ID).Updates(map[string]any{
			"paragraph":  terms.Paragraph,
			"updated_at": terms.UpdatedAt,
		})
		if update.Error != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, update.Error.Error())
		}
		terms.ID = tModel.ID
		return nil
	})
}

// StatsRepository implements the StatsRepository port using GORM. The stats
// table holds at most one row.
type StatsRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewStatsRepository creates a new StatsRepository instance
func NewStatsRepository(db *gorm.DB, logger coreport.Logger) *StatsRepository {
	return &StatsRepository{db: db, logger: logger}
}

// Get returns the current platform stats document
func (r *StatsRepository) Get(ctx context.Context) (*entity.PlatformStats, error) {
	var sModel model.PlatformStats
	result := r.db.WithContext(ctx).First(&sModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return statsModelToEntity(&sModel), nil
}

// Upsert replaces the stats document, creating it if absent
func (r *StatsRepository) Upsert(ctx context.Context, stats *entity.PlatformStats) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sModel model.PlatformStats
		result := tx.First(&sModel)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
			}
			sModel = statsEntityToModel(stats)
			if err := tx.Create(&sModel).Error; err != nil {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
			}
			stats.ID = sModel.ID
			return nil
		}

		update := tx.Model(&model.PlatformStats{}).Where("id = ?", sModel.ID).Updates(map[string]any{
			"token_value":            stats.TokenValue,
			"total_investment":       stats.TotalInvestment,
			"profit_percent":         stats.ProfitPercent,
			"active_users":           stats.ActiveUsers,
			"token_description":      stats.TokenDescription,
			"investment_description": stats.InvestmentDescription,
			"profit_description":     stats.ProfitDescription,
			"users_description":      stats.UsersDescription,
			"updated_at":             stats.UpdatedAt,
		})
		if update.Error != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, update.Error.Error())
		}
		stats.ID = sModel.ID
		return nil
	})
}

func statsEntityToModel(s *entity.PlatformStats) model.PlatformStats {
	return model.PlatformStats{
		TokenValue:            s.TokenValue,
		TotalInvestment:       s.TotalInvestment,
		ProfitPercent:         s.ProfitPercent,
		ActiveUsers:           s.ActiveUsers,
		TokenDescription:      s.TokenDescription,
		InvestmentDescription: s.InvestmentDescription,
		ProfitDescription:     s.ProfitDescription,
		UsersDescription:      s.UsersDescription,
		UpdatedAt:             s.UpdatedAt,
	}
}

func statsModelToEntity(m *model.PlatformStats) *entity.PlatformStats {
	return &entity.PlatformStats{
		ID:                    m.ID,
		TokenValue:            m.TokenValue,
		TotalInvestment:       m.TotalInvestment,
		ProfitPercent:         m.ProfitPercent,
		ActiveUsers:           m.ActiveUsers,
		TokenDescription:      m.TokenDescription,
		InvestmentDescription: m.InvestmentDescription,
		ProfitDescription:     m.ProfitDescription,
		UsersDescription:      m.UsersDescription,
		UpdatedAt:             m.UpdatedAt,
	}
}

// RateRepository implements the RateRepository port using GORM. The rates
// table holds at most one row.
type RateRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewRateRepository creates a new RateRepository instance
func NewRateRepository(db *gorm.DB, logger coreport.Logger) *RateRepository {
	return &RateRepository{db: db, logger: logger}
}

// Get returns the cached USD to INR rate
func (r *RateRepository) Get(ctx context.Context) (*entity.UsdRate, error) {
	var rModel model.UsdRate
	result := r.db.WithContext(ctx).First(&rModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return &entity.UsdRate{ID: rModel.ID, Rate: rModel.Rate, UpdatedAt: rModel.UpdatedAt}, nil
}

// Upsert replaces the cached rate, creating it if absent
func (r *RateRepository) Upsert(ctx context.Context, rate *entity.UsdRate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rModel model.UsdRate
		result := tx.First(&rModel)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
			}
			rModel = model.UsdRate{Rate: rate.Rate, UpdatedAt: rate.UpdatedAt}
			if err := tx.Create(&rModel).Error; err != nil {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
			}
			rate.ID = rModel.ID
			return nil
		}

		update := tx.Model(&model.UsdRate{}).Where("id = ?", rModel.ID).Updates(map[string]any{
			"rate":       rate.Rate,
			"updated_at": rate.UpdatedAt,
		})
		if update.Error != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, update.Error.Error())
		}
		rate.ID = rModel.ID
		return nil
	})
}
