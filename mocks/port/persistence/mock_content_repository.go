package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// MockNotificationRepository is a mock implementation of the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

// List mocks the List method
func (m *MockNotificationRepository) List(ctx context.Context) ([]*entity.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Notification), args.Error(1)
}

// Create mocks the Create method
func (m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// Update mocks the Update method
func (m *MockNotificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockNotificationRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTermsRepository is a mock implementation of the TermsRepository interface
type MockTermsRepository struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockTermsRepository) Get(ctx context.Context) (*entity.Terms, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Terms), args.Error(1)
}

// Upsert mocks the Upsert method
func (m *MockTermsRepository) Upsert(ctx context.Context, terms *entity.Terms) error {
	args := m.Called(ctx, terms)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of the StatsRepository interface
type MockStatsRepository struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockStatsRepository) Get(ctx context.Context) (*entity.PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatformStats), args.Error(1)
}

// Upsert mocks the Upsert method
func (m *MockStatsRepository) Upsert(ctx context.Context, stats *entity.PlatformStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockRateRepository is a mock implementation of the RateRepository interface
type MockRateRepository struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockRateRepository) Get(ctx context.Context) (*entity.UsdRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UsdRate), args.Error(1)
}

// Upsert mocks the Upsert method
func (m *MockRateRepository) Upsert(ctx context.Context, rate *entity.UsdRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
