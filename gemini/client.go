// Package gemini implements classification using Google Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// GenerativeClient abstracts the genai SDK for testing.
type GenerativeClient interface {
	// GenerateText sends a prompt and returns the model's text reply.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// Client wraps the Gemini genai.Client.
type Client struct {
	client *genai.Client
}

// Compile-time interface verification.
var _ GenerativeClient = (*Client)(nil)

// NewClient creates a new Client with the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// GenerateText implements GenerativeClient. Responses are requested as JSON
// so the structured extractor gets first crack at them.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
	}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", wrapAPIError(err)
	}
	return result.Text(), nil
}

// wrapAPIError surfaces the HTTP status and message from genai.APIError.
func wrapAPIError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("gemini API error (HTTP %d): %s", apiErr.Code, apiErr.Message)
	}
	return err
}
