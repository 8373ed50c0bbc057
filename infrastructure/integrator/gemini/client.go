// Package gemini is a thin REST client for the Google Generative Language
// API (generateContent). Persona instructions and sampling parameters are
// chosen by the caller; this package only moves requests over the wire.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finxpert/advisor-api/internal/config"
)

// Content is one conversation turn sent to the model.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// GenerateRequest configures a single generateContent call.
type GenerateRequest struct {
	SystemInstruction string
	Temperature       float64
	MaxOutputTokens   int
	Contents          []Content
}

type Client interface {
	Configured() bool
	Generate(ctx context.Context, request GenerateRequest) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	cfg        config.Gemini
}

func NewClient(cfg config.Gemini) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cfg: cfg,
	}
}

// Configured reports whether an API key is present. Without one every
// caller degrades to its deterministic fallback.
func (c *GeminiClient) Configured() bool {
	return c.cfg.APIKey != ""
}

type generateContentBody struct {
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate runs one generateContent call and returns the first candidate's
// concatenated text.
func (c *GeminiClient) Generate(ctx context.Context, request GenerateRequest) (string, error) {
	payload := generateContentBody{
		Contents: request.Contents,
		GenerationConfig: &generationConfig{
			Temperature:     request.Temperature,
			MaxOutputTokens: request.MaxOutputTokens,
		},
	}

	if request.SystemInstruction != "" {
		payload.SystemInstruction = &Content{
			Parts: []Part{{Text: request.SystemInstruction}},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute generate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("generate request failed with status %s: %s", resp.Status, detail)
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	if len(decoded.Candidates) == 0 {
		return "", fmt.Errorf("generate response contained no candidates")
	}

	text := ""
	for _, part := range decoded.Candidates[0].Content.Parts {
		text += part.Text
	}

	return text, nil
}
