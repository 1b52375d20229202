// Package openai implements classification against the OpenAI Responses API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/revmoji"
	"github.com/tidwall/gjson"
)

// Compile-time interface verification.
var _ revmoji.Classifier = (*Client)(nil)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultEndpoint is the Responses API endpoint.
const DefaultEndpoint = "https://api.openai.com/v1/responses"

// Response payload paths. The Responses API puts the generated text in the
// second output item (the first is reasoning metadata); anything that doesn't
// match this shape falls through the extraction chain instead of crashing.
const (
	outputTextPath   = "output.1.content.0.text"
	errorMessagePath = "error.message"
)

// APIError carries a non-2xx status and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("openai API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Client performs a single synchronous classification request. No retries,
// no streaming; the transport's default timeout applies.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithEndpoint overrides the API endpoint. Used by tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		endpoint:   DefaultEndpoint,
		apiKey:     apiKey,
		model:      DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request is the Responses API request body. Marshalling through
// encoding/json guarantees a valid payload no matter what the prompt
// contains.
type request struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// Classify sends the prompt and interprets the response through the
// extraction chain. A response that parses but carries no usable
// classification yields the fixed fallback, not an error; errors are
// reserved for transport failures and non-2xx statuses.
func (c *Client) Classify(ctx context.Context, prompt string) (*revmoji.Classification, error) {
	body, err := json.Marshal(request{Model: c.model, Input: prompt})
	if err != nil {
		return nil, fmt.Errorf("openai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := gjson.GetBytes(payload, errorMessagePath).Str
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	text := gjson.GetBytes(payload, outputTextPath).Str
	return revmoji.Interpret(text), nil
}
