package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finxpert/advisor-api/internal/config"
	"github.com/finxpert/advisor-api/internal/domain"
)

// EmailSender delivers messages through the SendGrid mail API.
type EmailSender struct {
	httpClient *http.Client
	cfg        config.SendGrid
}

func NewEmailSender(cfg config.SendGrid) *EmailSender {
	return &EmailSender{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

func (s *EmailSender) Channel() domain.Channel {
	return domain.ChannelEmail
}

func (s *EmailSender) Send(ctx context.Context, message Message) (string, error) {
	if s.cfg.APIKey == "" {
		return "", fmt.Errorf("SendGrid API key not configured")
	}

	body, err := json.Marshal(map[string]any{
		"personalizations": []map[string]any{
			{
				"to": []map[string]string{
					{"email": message.To, "name": message.ToName},
				},
				"subject": message.Subject,
			},
		},
		"from": map[string]string{
			"email": s.cfg.FromEmail,
			"name":  "FinXpert",
		},
		"content": []map[string]string{
			{"type": "text/html", "value": message.Body},
			{"type": "text/plain", "value": message.Body},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/mail/send", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("SendGrid request failed with status %s: %s", resp.Status, detail)
	}

	// SendGrid answers 202 Accepted with the message ID in a header.
	return resp.Header.Get("X-Message-Id"), nil
}
