package messaging

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

// WhatsAppSender delivers messages through the WhatsApp Cloud API.
type WhatsAppSender struct {
	httpClient *http.Client
	cfg        config.WhatsApp
}

func NewWhatsAppSender(cfg config.WhatsApp) *WhatsAppSender {
	return &WhatsAppSender{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

func (s *WhatsAppSender) Channel() domain.Channel {
	return domain.ChannelWhatsApp
}

func (s *WhatsAppSender) Send(ctx context.Context, message Message) (string, error) {
	if s.cfg.APIKey == "" || s.cfg.PhoneID == "" {
		return "", fmt.Errorf("WhatsApp API credentials not configured")
	}

	body, err := json.Marshal(map[string]any{
		"messaging_product": "whatsapp",
		"to":                message.To,
		"type":              "text",
		"text":              map[string]string{"body": message.Body},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/%s/messages", s.cfg.BaseURL, s.cfg.PhoneID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create WhatsApp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute WhatsApp request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiError struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil && apiError.Error.Message != "" {
			return "", fmt.Errorf("WhatsApp API error: %s", apiError.Error.Message)
		}
		return "", fmt.Errorf("WhatsApp request failed with status: %s", resp.Status)
	}

	var decoded struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode WhatsApp response: %w", err)
	}

	if len(decoded.Messages) == 0 {
		return "", nil
	}

	return decoded.Messages[0].ID, nil
}
