// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/httputil"
	"github.com/clarifyhq/clarify/pkg/types"
)

// groqAPIURL is the Groq chat-completions endpoint. Package-level var for
// test substitution.
var groqAPIURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqClient calls the Groq chat-completions API (OpenAI-compatible).
type GroqClient struct {
	cfg    types.AIConfig
	client *http.Client
	log    *zap.SugaredLogger
}

// NewGroqClient builds a client from the shared AI configuration.
func NewGroqClient(cfg types.AIConfig, log *zap.SugaredLogger) *GroqClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 90 * time.Second
	}
	return &GroqClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// chatRequest is the request body for the chat-completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat-completions API.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Generate sends a system/user prompt pair and returns the model text.
// Failures are reported as *types.ProviderError with the upstream status
// and message. Rate-limited calls are retried with backoff by the HTTP
// layer; nothing above this client retries.
func (c *GroqClient) Generate(ctx context.Context, system, user string, opts *GenerateOptions) (string, error) {
	temperature := c.cfg.Temperature
	maxTokens := c.cfg.MaxOutputTokens
	if opts != nil {
		if opts.Temperature != nil {
			temperature = *opts.Temperature
		}
		if opts.MaxOutputTokens > 0 {
			maxTokens = opts.MaxOutputTokens
		}
	}

	var messages []chatMessage
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	reqBody := chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := httputil.DoWithRetry(ctx, c.client, req, c.cfg.MaxRetries)
	if err != nil {
		return "", &types.ProviderError{Provider: "groq", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &types.ProviderError{
			Provider:   "groq",
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", &types.ProviderError{Provider: "groq", Message: "undecodable response body", Err: err}
	}

	if len(cResp.Choices) == 0 {
		return "", &types.ProviderError{Provider: "groq", Message: "response contained no choices"}
	}

	return cResp.Choices[0].Message.Content, nil
}

// jsonTemperature keeps structured-output calls close to deterministic.
const jsonTemperature = 0.3

// GenerateJSON instructs the model to answer with bare JSON, then strips
// fence wrapping, repairs the payload if needed, and decodes it into v.
func (c *GroqClient) GenerateJSON(ctx context.Context, system, user string, v any) error {
	jsonSystem := system + "\n\nIMPORTANT: Respond ONLY with valid JSON. No markdown, no explanations."

	raw, err := c.Generate(ctx, jsonSystem, user, &GenerateOptions{Temperature: Temperature(jsonTemperature)})
	if err != nil {
		return err
	}

	return DecodeJSON(raw, v)
}
