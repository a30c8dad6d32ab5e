package model

import (
	"time"
)

// User represents the database model for platform members
type User struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Username    string `gorm:"uniqueIndex;not null;size:255"`
	Email       string `gorm:"size:255"`
	PhoneNumber string `gorm:"size:50"`

	Sponsor   string   `gorm:"index;size:255"` // referrer username, empty for roots
	Referrals []string `gorm:"serializer:json"`
	Level     int      `gorm:"not null;default:0"`

	WalletCents        int64   `gorm:"not null;default:0"` // spendable commission, cents
	WalletRecordCents  int64   `gorm:"not null;default:0"` // lifetime commission, cents
	TotalInvestedCents int64   `gorm:"not null;default:0"`
	TokenWallet        float64 `gorm:"not null;default:0"`

	Packages []int64 `gorm:"serializer:json"` // purchase history, cents

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
