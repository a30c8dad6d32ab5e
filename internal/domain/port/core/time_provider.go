package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain.
// Vesting accrual depends on elapsed wall-clock time, so every read of "now"
// goes through this port to keep the math testable with a fixed clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
