// Package llm implements a minimal client for hosted chat-completion
// deployments speaking the OpenAI Chat Completions wire format (Azure
// OpenAI, OpenAI, vLLM, and compatible servers).
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spec-kit/helpdesk-gateway/internal/config"
)

// Client sends single-turn system+user completions to one deployment.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	deployment  string
	apiVersion  string
	maxTokens   int
	temperature float64
}

// NewClient builds a client from validated configuration.
func NewClient(cfg config.CompletionConfig) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout()},
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:      cfg.APIKey,
		deployment:  cfg.Deployment,
		apiVersion:  cfg.APIVersion,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Complete sends one system+user message pair and returns the model's
// text verbatim. Any upstream failure is returned as a plain error; the
// caller decides how to surface it.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	wireRequest := chatRequest{
		Model: c.deployment,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   c.maxTokens,
		Temperature: &c.temperature,
	}

	body, err := json.Marshal(wireRequest)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionsURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("api-key", c.apiKey)

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return "", fmt.Errorf("completion call failed: %w", err)
	}
	defer httpResponse.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(httpResponse.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if httpResponse.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion call failed: %s: %s",
			httpResponse.Status, upstreamErrorMessage(payload))
	}

	var wireResponse chatResponse
	if err := json.Unmarshal(payload, &wireResponse); err != nil {
		return "", fmt.Errorf("parse completion response: %w", err)
	}
	if len(wireResponse.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return wireResponse.Choices[0].Message.Content, nil
}

// completionsURL addresses the deployment the Azure way when an API
// version is configured, and the plain OpenAI path otherwise.
func (c *Client) completionsURL() string {
	if c.apiVersion == "" {
		return c.endpoint + "/v1/chat/completions"
	}
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, url.PathEscape(c.deployment), url.QueryEscape(c.apiVersion))
}

// upstreamErrorMessage extracts the error message from an OpenAI-format
// error body, falling back to the raw payload.
func upstreamErrorMessage(payload []byte) string {
	var wireError struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(payload, &wireError) == nil && wireError.Error.Message != "" {
		return wireError.Error.Message
	}
	return strings.TrimSpace(string(payload))
}

// --- wire types, matching the OpenAI Chat Completions JSON format ---

type chatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}
