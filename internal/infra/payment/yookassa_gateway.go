package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"flower-subscription-payments/internal/domain/model"
)

// YooKassaGateway creates payments against the YooKassa REST API using
// direct HTTP calls with shop-id/secret-key basic auth.
type YooKassaGateway struct {
	shopID    string
	secretKey string
	baseURL   string
	client    *http.Client
}

// NewYooKassaGateway creates a new direct YooKassa gateway.
// baseURL defaults to the production API when empty.
func NewYooKassaGateway(shopID, secretKey, baseURL string) *YooKassaGateway {
	if baseURL == "" {
		baseURL = "https://api.yookassa.ru/v3"
	}
	return &YooKassaGateway{
		shopID:    shopID,
		secretKey: secretKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// yooKassaCreateResponse is the subset of the create-payment response we use.
type yooKassaCreateResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Confirmation struct {
		ConfirmationURL string `json:"confirmation_url"`
	} `json:"confirmation"`
}

// yooKassaErrorResponse carries the gateway's own failure description.
type yooKassaErrorResponse struct {
	Type        string `json:"type"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CreatePayment implements usecase.Gateway. The Idempotence-Key header makes
// retried submissions of the same logical order safe on the gateway side.
// No retry is attempted here; failures surface to the caller immediately.
func (g *YooKassaGateway) CreatePayment(ctx context.Context, pr *model.PaymentRequest, idempotenceKey string) (*model.PaymentResult, error) {
	jsonData, err := json.Marshal(pr)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	url := g.baseURL + "/payments"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", idempotenceKey)
	req.SetBasicAuth(g.shopID, g.secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var gwErr yooKassaErrorResponse
		if jsonErr := json.Unmarshal(body, &gwErr); jsonErr == nil && gwErr.Description != "" {
			return nil, fmt.Errorf("yookassa error: %s", gwErr.Description)
		}
		return nil, fmt.Errorf("yookassa error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var response yooKassaCreateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, body: %s", err, string(body))
	}

	return &model.PaymentResult{
		ID:              response.ID,
		ConfirmationURL: response.Confirmation.ConfirmationURL,
		Status:          response.Status,
	}, nil
}
