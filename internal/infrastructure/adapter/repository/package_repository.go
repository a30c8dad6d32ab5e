package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PackageRepository implements the PackageRepository port using GORM
type PackageRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPackageRepository creates a new PackageRepository instance
func NewPackageRepository(db *gorm.DB, logger coreport.Logger) *PackageRepository {
	return &PackageRepository{db: db, logger: logger}
}

func packageModelToEntity(m *model.Package) *entity.Package {
	return &entity.Package{
		ID:                 m.ID,
		Name:               m.Name,
		PriceCents:         m.PriceCents,
		DiscountPercent:    m.DiscountPercent,
		StackingPeriodDays: m.StackingPeriodDays,
		Features:           m.Features,
		MinTokensRequired:  m.MinTokensRequired,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func packageEntityToModel(p *entity.Package) *model.Package {
	return &model.Package{
		ID:                 p.ID,
		Name:               p.Name,
		PriceCents:         p.PriceCents,
		DiscountPercent:    p.DiscountPercent,
		StackingPeriodDays: p.StackingPeriodDays,
		Features:           p.Features,
		MinTokensRequired:  p.MinTokensRequired,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// GetByID retrieves a catalog package by ID
func (r *PackageRepository) GetByID(ctx context.Context, id uint64) (*entity.Package, error) {
	var pkgModel model.Package
	result := r.db.WithContext(ctx).First(&pkgModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return packageModelToEntity(&pkgModel), nil
}

// List returns the full catalog
func (r *PackageRepository) List(ctx context.Context) ([]*entity.Package, error) {
	var pkgModels []model.Package
	result := r.db.WithContext(ctx).Order("price_cents").Find(&pkgModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	packages := make([]*entity.Package, 0, len(pkgModels))
	for i := range pkgModels {
		packages = append(packages, packageModelToEntity(&pkgModels[i]))
	}
	return packages, nil
}

// Create adds a catalog entry
func (r *PackageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	pkgModel := packageEntityToModel(pkg)
	result := r.db.WithContext(ctx).Create(pkgModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	pkg.ID = pkgModel.ID
	return nil
}

// Update edits a catalog entry
func (r *PackageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	result := r.db.WithContext(ctx).Model(&model.Package{}).
		Where("id = ?", pkg.ID).
		Updates(map[string]any{
			"name":                 pkg.Name,
			"price_cents":          pkg.PriceCents,
			"discount_percent":     pkg.DiscountPercent,
			"stacking_period_days": pkg.StackingPeriodDays,
			"features":             pkg.Features,
			"min_tokens_required":  pkg.MinTokensRequired,
			"updated_at":           pkg.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPackageNotFound
	}
	return nil
}
