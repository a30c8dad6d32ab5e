package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeClient_USDToINR(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the INR conversion rate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":"success","conversion_rates":{"INR":83.12,"EUR":0.92}}`))
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, 5*time.Second)

		rate, err := client.USDToINR(ctx)

		require.NoError(t, err)
		assert.Equal(t, 83.12, rate)
	})

	t.Run("should fail on a non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, 5*time.Second)

		rate, err := client.USDToINR(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
		assert.Equal(t, float64(0), rate)
	})

	t.Run("should fail when the payload has no INR conversion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":"success","conversion_rates":{"EUR":0.92}}`))
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, 5*time.Second)

		_, err := client.USDToINR(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing INR")
	})

	t.Run("should fail on a malformed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, 5*time.Second)

		_, err := client.USDToINR(ctx)

		assert.Error(t, err)
	})

	t.Run("should respect context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewExchangeClient(server.URL, 5*time.Second)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.USDToINR(cancelled)

		assert.Error(t, err)
	})
}
