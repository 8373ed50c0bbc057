package messaging

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/finxpert/advisor-api/internal/config"
	"github.com/finxpert/advisor-api/internal/domain"
)

// SMSSender delivers messages through the Twilio Messages API.
type SMSSender struct {
	httpClient *http.Client
	cfg        config.Twilio
}

func NewSMSSender(cfg config.Twilio) *SMSSender {
	return &SMSSender{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

func (s *SMSSender) Channel() domain.Channel {
	return domain.ChannelSMS
}

func (s *SMSSender) Send(ctx context.Context, message Message) (string, error) {
	if s.cfg.AccountSID == "" || s.cfg.AuthToken == "" || s.cfg.PhoneNumber == "" {
		return "", fmt.Errorf("Twilio credentials not configured")
	}

	form := url.Values{}
	form.Set("From", s.cfg.PhoneNumber)
	form.Set("To", message.To)
	form.Set("Body", message.Body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.cfg.BaseURL, s.cfg.AccountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create SMS request: %w", err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(s.cfg.AccountSID + ":" + s.cfg.AuthToken))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute SMS request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiError struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil && apiError.Message != "" {
			return "", fmt.Errorf("Twilio API error: %s", apiError.Message)
		}
		return "", fmt.Errorf("SMS request failed with status: %s", resp.Status)
	}

	var decoded struct {
		SID string `json:"sid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode SMS response: %w", err)
	}

	return decoded.SID, nil
}
