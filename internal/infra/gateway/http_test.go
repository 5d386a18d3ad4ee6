//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"library-clean-service/internal/domain/fees"
	"library-clean-service/internal/infra/gateway"
	"library-clean-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) (*gateway.HTTPGateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := gateway.NewHTTPGateway(config.GatewayConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
	return g, srv
}

func mustMoney(t *testing.T, cents int64) fees.Money {
	t.Helper()
	m, err := fees.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestProcessPayment(t *testing.T) {
	t.Run("success: posts charge and decodes receipt", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]any

		g, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success":         true,
				"transaction_ref": "txn_abc123",
				"message":         "Charge accepted.",
			})
		})

		receipt, err := g.ProcessPayment(context.Background(), "123456", mustMoney(t, 650), "Late fees for '1984'")

		require.NoError(t, err)
		assert.True(t, receipt.Success)
		assert.Equal(t, "txn_abc123", receipt.TransactionRef)
		assert.Equal(t, "/v1/charges", gotPath)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "123456", gotBody["patron_id"])
		assert.Equal(t, float64(650), gotBody["amount_cents"])
		assert.NotEmpty(t, gotBody["external_id"])
	})

	t.Run("decline: receipt with success=false, no error", func(t *testing.T) {
		g, _ := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Card declined.",
			})
		})

		receipt, err := g.ProcessPayment(context.Background(), "123456", mustMoney(t, 650), "Late fees")

		require.NoError(t, err)
		assert.False(t, receipt.Success)
		assert.Equal(t, "Card declined.", receipt.Message)
	})

	t.Run("non-2xx status surfaces as error", func(t *testing.T) {
		g, _ := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		receipt, err := g.ProcessPayment(context.Background(), "123456", mustMoney(t, 650), "Late fees")

		require.Error(t, err)
		assert.Nil(t, receipt)
		assert.Contains(t, err.Error(), "gateway returned")
	})

	t.Run("unreachable processor surfaces as error", func(t *testing.T) {
		g, srv := newGateway(t, func(_ http.ResponseWriter, _ *http.Request) {})
		srv.Close()

		_, err := g.ProcessPayment(context.Background(), "123456", mustMoney(t, 650), "Late fees")

		require.Error(t, err)
	})
}

func TestRefundPayment(t *testing.T) {
	t.Run("success: posts refund with transaction ref", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any

		g, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "Refund issued.",
			})
		})

		receipt, err := g.RefundPayment(context.Background(), "txn_abc123", mustMoney(t, 650))

		require.NoError(t, err)
		assert.True(t, receipt.Success)
		assert.Equal(t, "/v1/refunds", gotPath)
		assert.Equal(t, "txn_abc123", gotBody["transaction_ref"])
		assert.Equal(t, float64(650), gotBody["amount_cents"])
	})
}
