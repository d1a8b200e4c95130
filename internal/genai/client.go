package genai

// Package genai wraps the remote generative-text endpoint used to synthesize
// study guides. The service layer treats it as an opaque call: topic in,
// structured guide out. No retry policy; failures surface to the caller.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"questshare/internal/config"
	"questshare/internal/model"
)

// Client calls the configured text-generation API over HTTP.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
}

// NewClient constructs a generation client from config.
func NewClient(cfg config.GenAIConfig) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("genai endpoint is required")
	}
	return &Client{
		httpClient: &http.Client{},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}, nil
}

type generateRequest struct {
	Model string `json:"model"`
	Topic string `json:"topic"`
}

// Generate asks the remote model for a study guide on the given topic.
func (c *Client) Generate(ctx context.Context, topic string) (*model.StudyGuide, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Topic: topic})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a bounded slice of the body for diagnostics only.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("generation endpoint returned %d: %s", resp.StatusCode, snippet)
	}

	var guide model.StudyGuide
	if err := json.NewDecoder(resp.Body).Decode(&guide); err != nil {
		return nil, fmt.Errorf("decode study guide: %w", err)
	}
	return &guide, nil
}
