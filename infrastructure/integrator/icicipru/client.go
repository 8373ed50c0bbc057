// Package icicipru integrates with the ICICI Prudential policy API. It is
// the second-priority insurance source, tried when Setu yields nothing.
package icicipru

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/finxpert/advisor-api/internal/config"
	"github.com/finxpert/advisor-api/internal/domain"
)

type Client interface {
	Configured() bool
	FetchPolicies(ctx context.Context) ([]domain.ProductSnapshot, error)
}

type ICICIPruClient struct {
	httpClient *http.Client
	cfg        config.ICICIPru
}

func NewClient(cfg config.ICICIPru) Client {
	return &ICICIPruClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

func (c *ICICIPruClient) Configured() bool {
	return c.cfg.APIKey != "" && c.cfg.APISecret != ""
}

type policy struct {
	ClientID     string  `json:"client_id"`
	PolicyNumber string  `json:"policy_number"`
	ProductName  string  `json:"product_name"`
	PremiumPaid  float64 `json:"premium_paid"`
	FundValue    float64 `json:"fund_value"`
	SumAssured   float64 `json:"sum_assured"`
	Premium      float64 `json:"premium"`
	Term         int     `json:"term"`
	Status       string  `json:"status"`
}

func (c *ICICIPruClient) FetchPolicies(ctx context.Context) ([]domain.ProductSnapshot, error) {
	token, err := c.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v1/policies", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create policies request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute policies request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("policies request failed with status: %s", resp.Status)
	}

	var policies []policy
	if err := json.NewDecoder(resp.Body).Decode(&policies); err != nil {
		return nil, fmt.Errorf("failed to decode policies response: %w", err)
	}

	snapshots := make([]domain.ProductSnapshot, 0, len(policies))
	for _, p := range policies {
		currentValue := p.FundValue
		if currentValue == 0 {
			currentValue = p.PremiumPaid
		}

		snapshots = append(snapshots, domain.ProductSnapshot{
			ClientID:       p.ClientID,
			ProductCode:    p.PolicyNumber,
			ProductName:    p.ProductName,
			Type:           domain.ProductTypeInsurance,
			AmountInvested: p.PremiumPaid,
			CurrentValue:   currentValue,
			Metadata: map[string]any{
				"sumAssured": p.SumAssured,
				"premium":    p.Premium,
				"term":       p.Term,
				"status":     p.Status,
				"provider":   "ICICI Prudential",
			},
		})
	}

	return snapshots, nil
}

func (c *ICICIPruClient) fetchToken(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"client_id":     c.cfg.APIKey,
		"client_secret": c.cfg.APISecret,
		"grant_type":    "client_credentials",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/oauth/token", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status: %s", resp.Status)
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	return tokenResponse.AccessToken, nil
}
