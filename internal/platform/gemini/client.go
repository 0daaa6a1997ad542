package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/wordguess/internal/config"
	"github.com/phrazzld/wordguess/internal/generation"
)

// apiKeyHeader carries the caller's API key on every request.
const apiKeyHeader = "x-goog-api-key"

// Client implements generation.TextGenerator against the Gemini
// generateContent endpoint.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// transport sends the HTTP requests
	transport Transport

	// endpoint is the full generateContent URL for the configured model
	endpoint string

	// model is the name of the Gemini model to use
	model string
}

var _ generation.TextGenerator = (*Client)(nil)

// NewClient creates a Gemini client.
//
// Parameters:
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing model name, base URL and timeout
//   - transport: The transport to send requests with; nil selects an
//     HTTPTransport honoring cfg.RequestTimeoutSeconds
//
// Returns:
//   - A ready Client or an error wrapping generation.ErrInvalidConfig
func NewClient(logger *slog.Logger, cfg config.LLMConfig, transport Transport) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", generation.ErrInvalidConfig, cfg.BaseURL)
	}

	if transport == nil {
		transport = NewHTTPTransport(time.Duration(cfg.RequestTimeoutSeconds) * time.Second)
	}

	return &Client{
		logger:    logger,
		transport: transport,
		endpoint:  base.String() + "/models/" + url.PathEscape(cfg.ModelName) + ":generateContent",
		model:     cfg.ModelName,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends prompt to the model and returns the concatenated text of
// the first candidate, trimmed.
//
// Errors:
//   - *generation.RemoteCallError for any non-2xx status, carrying the body text
//   - generation.ErrMalformedResponse when the success body is not a
//     generateContent response or contains no text
func (c *Client) GenerateText(ctx context.Context, apiKey, prompt string, maxOutputTokens int) (string, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", ErrEmptyAPIKey
	}
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	body, err := json.Marshal(newGenerateContentRequest(prompt, maxOutputTokens))
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set(apiKeyHeader, apiKey)

	c.logger.DebugContext(ctx, "Making Gemini API call",
		"model", c.model,
		"prompt_length", len(prompt),
		"max_output_tokens", maxOutputTokens)

	start := time.Now()
	resp, sendErr := c.transport.Send(ctx, Request{
		Method: http.MethodPost,
		URL:    c.endpoint,
		Header: header,
		Body:   body,
	})
	if sendErr != nil && resp.StatusCode == 0 {
		return "", fmt.Errorf("gemini request failed: %w", sendErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "Gemini API call returned error status",
			"model", c.model,
			"status_code", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds())
		return "", &generation.RemoteCallError{
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}

	if sendErr != nil {
		return "", fmt.Errorf("gemini request failed: %w", sendErr)
	}

	var parsed genai.GenerateContentResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return "", generation.NewMalformedResponseError("undecodable response envelope", err)
	}

	text, finishReason := extractText(&parsed)
	text = strings.TrimSpace(text)

	c.logger.InfoContext(ctx, "Gemini API call successful",
		"model", c.model,
		"finish_reason", string(finishReason),
		"text_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	if text == "" {
		reason := "no text in response"
		if finishReason != "" {
			reason += " (finish reason " + string(finishReason) + ")"
		}
		return "", generation.NewMalformedResponseError(reason, nil)
	}

	return text, nil
}
