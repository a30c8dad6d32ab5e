package model

import (
	"time"
)

// TokenWithdrawal represents the database model for token withdrawal requests
type TokenWithdrawal struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	Username      string    `gorm:"not null;size:255"`
	TransactionID uint64    `gorm:"not null;index"`
	Tokens        float64   `gorm:"not null"`
	ValueCents    int64     `gorm:"not null"`
	UpiID         string    `gorm:"size:255"`
	SettlementRef string    `gorm:"size:255"`
	Status        string    `gorm:"not null;index;size:50"`
	RequestedAt   time.Time `gorm:"not null"`

	User        User        `gorm:"foreignKey:UserID;references:ID"`
	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for TokenWithdrawal
func (TokenWithdrawal) TableName() string {
	return "token_withdrawals"
}

// WalletWithdrawal represents the database model for wallet withdrawal requests
type WalletWithdrawal struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	Username      string    `gorm:"not null;size:255"`
	AmountCents   int64     `gorm:"not null"`
	UpiID         string    `gorm:"size:255"`
	SettlementRef string    `gorm:"size:255"`
	Status        string    `gorm:"not null;index;size:50"`
	RequestedAt   time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for WalletWithdrawal
func (WalletWithdrawal) TableName() string {
	return "wallet_withdrawals"
}
