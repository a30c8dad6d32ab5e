package model

import (
	"time"
)

// Transaction represents the database model for package purchases
type Transaction struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	UserID      uint64 `gorm:"not null;index"`
	Username    string `gorm:"not null;size:255"`
	PackageID   uint64 `gorm:"not null;index"`
	PackageName string `gorm:"not null;size:255"`
	PriceCents  int64  `gorm:"not null"`

	Tokens             float64 `gorm:"not null"`
	TokensWithdrawn    float64 `gorm:"not null;default:0"`
	TokensAvailable    float64 `gorm:"not null;default:0"`
	MinTokensRequired  float64 `gorm:"not null;default:0"`
	StackingPeriodDays int     `gorm:"not null"`

	UTR string `gorm:"size:255"`

	PurchasedAt   time.Time `gorm:"not null"`
	LastAccruedAt time.Time `gorm:"not null"`
	Status        string    `gorm:"not null;index;size:50"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
