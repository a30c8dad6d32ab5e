package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ExchangeClient implements the RateSource port against an
// exchangerate-api.com compatible endpoint.
type ExchangeClient struct {
	baseURL string
	client  *http.Client
}

// NewExchangeClient creates a rate client for the given endpoint URL
func NewExchangeClient(baseURL string, timeout time.Duration) *ExchangeClient {
	return &ExchangeClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// rateResponse is the subset of the provider payload we read
type rateResponse struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// USDToINR fetches the latest USD base rates and returns the INR conversion
func (c *ExchangeClient) USDToINR(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return 0, fmt.Errorf("building rate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching usd rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decoding rate response: %w", err)
	}

	rate, ok := payload.ConversionRates["INR"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate provider response missing INR conversion")
	}
	return rate, nil
}
