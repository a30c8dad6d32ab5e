package persistence

import (
	"context"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// NotificationRepository manages admin-published announcements
type NotificationRepository interface {
	List(ctx context.Context) ([]*entity.Notification, error)
	Create(ctx context.Context, notification *entity.Notification) error
	Update(ctx context.Context, notification *entity.Notification) error
	Delete(ctx context.Context, id uint64) error
}

// TermsRepository manages the single terms-and-conditions document
type TermsRepository interface {
	// Get returns the current terms
	//
	// Possible errors:
	// - ErrNotFound: if no terms document exists yet
	Get(ctx context.Context) (*entity.Terms, error)

	// Upsert replaces the terms, creating the document if absent
	Upsert(ctx context.Context, terms *entity.Terms) error
}

// StatsRepository manages the single platform stats document
type StatsRepository interface {
	// Get returns the current stats
	//
	// Possible errors:
	// - ErrNotFound: if no stats document exists yet
	Get(ctx context.Context) (*entity.PlatformStats, error)

	// Upsert replaces the stats document, creating it if absent
	Upsert(ctx context.Context, stats *entity.PlatformStats) error
}

// RateRepository manages the cached USD to INR rate
type RateRepository interface {
	// Get returns the cached rate
	//
	// Possible errors:
	// - ErrNotFound: if no rate has been fetched yet
	Get(ctx context.Context) (*entity.UsdRate, error)

	// Upsert replaces the cached rate, creating the document if absent
	Upsert(ctx context.Context, rate *entity.UsdRate) error
}
