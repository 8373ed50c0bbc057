// Package bsestar calls the BSE Star MF transaction endpoint used to settle
// mutual fund purchases, redemptions and switches.
package bsestar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finxpert/advisor-api/infrastructure/integrator"
	"github.com/finxpert/advisor-api/internal/config"
)

type TransactionRequest struct {
	ClientID        string  `json:"client_id"`
	SchemeCode      string  `json:"scheme_code"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	FolioNumber     string  `json:"folio_number,omitempty"`
}

type TransactionResponse struct {
	TransactionID string         `json:"transaction_id"`
	Raw           map[string]any `json:"-"`
}

type Client interface {
	Configured() bool
	ExecuteTransaction(ctx context.Context, request TransactionRequest) (*TransactionResponse, error)
}

type BSEStarClient struct {
	httpClient *http.Client
	cfg        config.BSEStar
}

func NewClient(cfg config.BSEStar) Client {
	return &BSEStarClient{
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
		cfg: cfg,
	}
}

func (c *BSEStarClient) Configured() bool {
	return c.cfg.APIKey != ""
}

// ExecuteTransaction posts the transaction to BSE Star. A non-success HTTP
// status is surfaced as *integrator.APIError carrying the partner's own
// status code and message.
func (c *BSEStarClient) ExecuteTransaction(ctx context.Context, request TransactionRequest) (*TransactionResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/Transaction", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute transaction request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &integrator.APIError{
			StatusCode: resp.StatusCode,
			Message:    partnerMessage(payload),
		}
	}

	raw := map[string]any{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode transaction response: %w", err)
	}

	response := &TransactionResponse{Raw: raw}
	if id, ok := raw["transaction_id"].(string); ok {
		response.TransactionID = id
	}

	return response, nil
}

func partnerMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}

	return "transaction failed"
}
