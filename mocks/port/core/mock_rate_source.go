package core

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRateSource is a mock implementation of the RateSource interface
type MockRateSource struct {
	mock.Mock
}

// USDToINR mocks the USDToINR method
func (m *MockRateSource) USDToINR(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
