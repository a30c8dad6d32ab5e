package migration

import (
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{db: db, logger: logger}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", nil)
	return nil
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.User{},
		&model.Package{},
		&model.Transaction{},
		&model.TokenWithdrawal{},
		&model.WalletWithdrawal{},
		&model.Notification{},
		&model.Terms{},
		&model.PlatformStats{},
		&model.UsdRate{},
	)
}

// createIndexes creates database indexes for the hot lookup paths
func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	// Usernames key the sponsor chain, so lookups must be unique and fast
	if err := m.db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_unique ON users (username)").Error; err != nil {
		return err
	}

	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_users_sponsor ON users (sponsor)").Error; err != nil {
		return err
	}

	// Pending queue is filtered by status on every admin refresh
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions (status)").Error; err != nil {
		return err
	}

	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions (user_id)").Error; err != nil {
		return err
	}

	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_token_withdrawals_status ON token_withdrawals (status)").Error; err != nil {
		return err
	}

	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_wallet_withdrawals_status ON wallet_withdrawals (status)").Error; err != nil {
		return err
	}

	return nil
}
