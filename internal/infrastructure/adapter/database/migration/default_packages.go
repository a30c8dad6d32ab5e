package migration

import (
	"context"

	"github.com/stakeway/backoffice/internal/domain/entity"
	"github.com/stakeway/backoffice/internal/domain/usecase/catalog"
)

// Starter catalog for a fresh deployment. Admins edit or extend it afterwards.
var defaultPackages = []entity.Package{
	{
		Name:               "Starter",
		PriceCents:         500_000,
		DiscountPercent:    0,
		StackingPeriodDays: 180,
		Features:           []string{"Daily token vesting", "Referral commissions"},
		MinTokensRequired:  10,
	},
	{
		Name:               "Growth",
		PriceCents:         2_500_000,
		DiscountPercent:    5,
		StackingPeriodDays: 365,
		Features:           []string{"Daily token vesting", "Referral commissions", "Priority settlement"},
		MinTokensRequired:  50,
	},
}

// CreateDefaultPackages seeds the starter catalog when the table is empty
func CreateDefaultPackages(ctx context.Context, catalogService *catalog.Service) error {
	existing, err := catalogService.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range defaultPackages {
		pkg := defaultPackages[i]
		if err := catalogService.Add(ctx, &pkg); err != nil {
			return err
		}
	}
	return nil
}
