package catalog

import (
	"context"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/port/persistence"
)

// Service manages the investible package catalog
type Service struct {
	packageRepo  persistence.PackageRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a catalog service
func NewService(
	packageRepo persistence.PackageRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		packageRepo:  packageRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns the full catalog
func (s *Service) List(ctx context.Context) ([]*entity.Package, error) {
	return s.packageRepo.List(ctx)
}

// Get returns one catalog package
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Package, error) {
	return s.packageRepo.GetByID(ctx, id)
}

func validatePackage(pkg *entity.Package) error {
	if pkg.Name == "" || pkg.PriceCents <= 0 || pkg.StackingPeriodDays <= 0 {
		return errs.ErrInvalidRequest
	}
	if len(pkg.Features) > entity.MaxPackageFeatures {
		return errs.ErrInvalidRequest
	}
	return nil
}

// Add validates and stores a new catalog package
func (s *Service) Add(ctx context.Context, pkg *entity.Package) error {
	if err := validatePackage(pkg); err != nil {
		return err
	}

	now := s.timeProvider.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return err
	}

	s.logger.Info("Package added", map[string]any{
		"package_id":      pkg.ID,
		"name":            pkg.Name,
		"price":           pkg.Price(),
		"stacking_period": pkg.StackingPeriodDays,
	})
	return nil
}

// Update edits a catalog package. Transactions created before the edit keep
// their copied price and stacking period.
func (s *Service) Update(ctx context.Context, pkg *entity.Package) error {
	if err := validatePackage(pkg); err != nil {
		return err
	}

	pkg.UpdatedAt = s.timeProvider.Now()
	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	s.logger.Info("Package updated", map[string]any{
		"package_id": pkg.ID,
		"name":       pkg.Name,
	})
	return nil
}
