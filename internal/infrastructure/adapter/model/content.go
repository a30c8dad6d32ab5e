package model

import (
	"time"
)

// Notification represents the database model for admin announcements
type Notification struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Message     string    `gorm:"not null;type:text"`
	IsImportant bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// Terms represents the single terms-and-conditions row
type Terms struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Paragraph string    `gorm:"not null;type:text"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Terms
func (Terms) TableName() string {
	return "terms"
}

// PlatformStats represents the single marketing stats row
type PlatformStats struct {
	ID                    uint64    `gorm:"primaryKey;autoIncrement"`
	TokenValue            float64   `gorm:"not null"`
	TotalInvestment       float64   `gorm:"not null"`
	ProfitPercent         float64   `gorm:"not null"`
	ActiveUsers           int64     `gorm:"not null"`
	TokenDescription      string    `gorm:"type:text"`
	InvestmentDescription string    `gorm:"type:text"`
	ProfitDescription     string    `gorm:"type:text"`
	UsersDescription      string    `gorm:"type:text"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName specifies the table name for PlatformStats
func (PlatformStats) TableName() string {
	return "platform_stats"
}

// UsdRate represents the single cached exchange-rate row
type UsdRate struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Rate      float64   `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UsdRate
func (UsdRate) TableName() string {
	return "usd_rates"
}
