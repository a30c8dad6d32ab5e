package entity

import "time"

// MaxPackageFeatures caps the marketing bullet points on a package.
const MaxPackageFeatures = 4

// Package is a catalog entry for an investible product. Price and stacking
// period are copied into each Transaction at creation, so edits here never
// retroactively change existing purchases.
type Package struct {
	ID                 uint64
	Name               string
	PriceCents         int64
	DiscountPercent    float64
	StackingPeriodDays int
	Features           []string // at most MaxPackageFeatures entries
	MinTokensRequired  float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Price returns the package price as a two-decimal string
func (p *Package) Price() string {
	return CentsToAmount(p.PriceCents)
}
