package dto

import (
	"github.com/stakeway/backoffice/internal/domain/entity"
)

// PackageRequest represents a catalog package create or update
type PackageRequest struct {
	Name               string   `json:"name" binding:"required"`
	Price              string   `json:"price" binding:"required"`
	DiscountPercent    float64  `json:"discountPercent"`
	StackingPeriodDays int      `json:"stackingPeriodDays" binding:"required,gt=0"`
	Features           []string `json:"features" binding:"max=4"`
	MinTokensRequired  float64  `json:"minTokensRequired"`
}

// PackageResponse represents one catalog package
type PackageResponse struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Price              string   `json:"price"`
	DiscountPercent    float64  `json:"discountPercent"`
	StackingPeriodDays int      `json:"stackingPeriodDays"`
	Features           []string `json:"features"`
	MinTokensRequired  float64  `json:"minTokensRequired"`
}

// ToPackageResponse maps a package entity to its API representation
func ToPackageResponse(pkg *entity.Package) PackageResponse {
	return PackageResponse{
		ID:                 pkg.ID,
		Name:               pkg.Name,
		Price:              pkg.Price(),
		DiscountPercent:    pkg.DiscountPercent,
		StackingPeriodDays: pkg.StackingPeriodDays,
		Features:           pkg.Features,
		MinTokensRequired:  pkg.MinTokensRequired,
	}
}

// ToPackageResponses maps a list of package entities
func ToPackageResponses(pkgs []*entity.Package) []PackageResponse {
	responses := make([]PackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		responses = append(responses, ToPackageResponse(pkg))
	}
	return responses
}
