package model

import (
	"time"
)

// Package represents the database model for catalog packages
type Package struct {
	ID                 uint64   `gorm:"primaryKey;autoIncrement"`
	Name               string   `gorm:"not null;size:255"`
	PriceCents         int64    `gorm:"not null"`
	DiscountPercent    float64  `gorm:"not null;default:0"`
	StackingPeriodDays int      `gorm:"not null"`
	Features           []string `gorm:"serializer:json"`
	MinTokensRequired  float64  `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Package
func (Package) TableName() string {
	return "packages"
}
