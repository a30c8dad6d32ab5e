package content

import (
	"context"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/port/persistence"
)

// Service manages the publishable content surfaces of the platform:
// notifications, the terms document, the marketing stats block and the cached
// USD/INR exchange rate.
type Service struct {
	notificationRepo persistence.NotificationRepository
	termsRepo        persistence.TermsRepository
	statsRepo        persistence.StatsRepository
	rateRepo         persistence.RateRepository
	rateSource       coreport.RateSource
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
}

// NewService creates a content service
func NewService(
	notificationRepo persistence.NotificationRepository,
	termsRepo persistence.TermsRepository,
	statsRepo persistence.StatsRepository,
	rateRepo persistence.RateRepository,
	rateSource coreport.RateSource,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		termsRepo:        termsRepo,
		statsRepo:        statsRepo,
		rateRepo:         rateRepo,
		rateSource:       rateSource,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// ListNotifications returns all notifications, newest first
func (s *Service) ListNotifications(ctx context.Context) ([]*entity.Notification, error) {
	return s.notificationRepo.List(ctx)
}

// AddNotification publishes a new notification
func (s *Service) AddNotification(ctx context.Context, message string, isImportant bool) (*entity.Notification, error) {
	if message == "" {
		return nil, errs.ErrInvalidRequest
	}

	notification := &entity.Notification{
		Message:     message,
		IsImportant: isImportant,
		CreatedAt:   s.timeProvider.Now(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// UpdateNotification edits an existing notification
func (s *Service) UpdateNotification(ctx context.Context, id uint64, message string, isImportant bool) error {
	if message == "" {
		return errs.ErrInvalidRequest
	}

	return s.notificationRepo.Update(ctx, &entity.Notification{
		ID:          id,
		Message:     message,
		IsImportant: isImportant,
	})
}

// DeleteNotification removes a notification
func (s *Service) DeleteNotification(ctx context.Context, id uint64) error {
	return s.notificationRepo.Delete(ctx, id)
}

// GetTerms returns the current terms document
func (s *Service) GetTerms(ctx context.Context) (*entity.Terms, error) {
	return s.termsRepo.Get(ctx)
}

// UpdateTerms replaces the terms document, creating it if absent
func (s *Service) UpdateTerms(ctx context.Context, paragraph string) error {
	if paragraph == "" {
		return errs.ErrInvalidRequest
	}

	return s.termsRepo.Upsert(ctx, &entity.Terms{
		Paragraph: paragraph,
		UpdatedAt: s.timeProvider.Now(),
	})
}

// GetStats returns the platform stats document
func (s *Service) GetStats(ctx context.Context) (*entity.PlatformStats, error) {
	return s.statsRepo.Get(ctx)
}

// UpdateStats replaces the platform stats document, creating it if absent
func (s *Service) UpdateStats(ctx context.Context, stats *entity.PlatformStats) error {
	stats.UpdatedAt = s.timeProvider.Now()
	return s.statsRepo.Upsert(ctx, stats)
}

// GetRate returns the cached USD to INR rate
func (s *Service) GetRate(ctx context.Context) (*entity.UsdRate, error) {
	return s.rateRepo.Get(ctx)
}

// RefreshRate fetches the current USD to INR rate from the external source
// and caches it
func (s *Service) RefreshRate(ctx context.Context) (*entity.UsdRate, error) {
	value, err := s.rateSource.USDToINR(ctx)
	if err != nil {
		s.logger.Error("Rate fetch failed", map[string]any{"error": err.Error()})
		return nil, err
	}

	rate := &entity.UsdRate{
		Rate:      value,
		UpdatedAt: s.timeProvider.Now(),
	}
	if err := s.rateRepo.Upsert(ctx, rate); err != nil {
		return nil, err
	}

	s.logger.Info("USD rate refreshed", map[string]any{"rate": value})
	return rate, nil
}
