package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"library-clean-service/internal/domain/fees"
	"library-clean-service/internal/pkg/config"
	"library-clean-service/internal/pkg/errs"
	"library-clean-service/internal/usecase/commands"

	"github.com/google/uuid"
)

// HTTPGateway talks to the external payment processor over its JSON API.
// Declines come back as receipts with Success=false; transport failures and
// non-2xx statuses come back as errors.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPGateway(cfg config.GatewayConfig) *HTTPGateway {
	return &HTTPGateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type chargeRequest struct {
	ExternalID  string `json:"external_id"`
	PatronID    string `json:"patron_id"`
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description"`
}

type refundRequest struct {
	ExternalID     string `json:"external_id"`
	TransactionRef string `json:"transaction_ref"`
	AmountCents    int64  `json:"amount_cents"`
}

type gatewayResponse struct {
	Success        bool   `json:"success"`
	TransactionRef string `json:"transaction_ref"`
	Message        string `json:"message"`
}

func (g *HTTPGateway) ProcessPayment(ctx context.Context, patronID string, amount fees.Money, description string) (*commands.GatewayReceipt, error) {
	req := chargeRequest{
		ExternalID:  uuid.NewString(),
		PatronID:    patronID,
		AmountCents: amount.Cents(),
		Description: description,
	}
	return g.post(ctx, "/v1/charges", req)
}

func (g *HTTPGateway) RefundPayment(ctx context.Context, transactionRef string, amount fees.Money) (*commands.GatewayReceipt, error) {
	req := refundRequest{
		ExternalID:     uuid.NewString(),
		TransactionRef: transactionRef,
		AmountCents:    amount.Cents(),
	}
	return g.post(ctx, "/v1/refunds", req)
}

func (g *HTTPGateway) post(ctx context.Context, path string, payload any) (*commands.GatewayReceipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode gateway request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build gateway request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.Newf("gateway returned %s", resp.Status)
	}

	var out gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode gateway response")
	}
	return &commands.GatewayReceipt{
		Success:        out.Success,
		TransactionRef: out.TransactionRef,
		Message:        out.Message,
	}, nil
}
