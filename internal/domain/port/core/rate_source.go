package core

import "context"

// RateSource provides the external USD to INR conversion rate.
type RateSource interface {
	USDToINR(ctx context.Context) (float64, error)
}
