package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/revmoji"
)

// Compile-time interface verification.
var _ revmoji.Classifier = (*Classifier)(nil)

// Classifier implements revmoji.Classifier using Google Gemini.
type Classifier struct {
	client GenerativeClient
	model  string
}

// NewClassifier creates a new Classifier.
func NewClassifier(client GenerativeClient, model string) *Classifier {
	return &Classifier{
		client: client,
		model:  model,
	}
}

// Classify sends the prompt and interprets the reply through the extraction
// chain. Like the OpenAI backend, an unhelpful reply degrades to the fixed
// fallback rather than an error.
func (c *Classifier) Classify(ctx context.Context, prompt string) (*revmoji.Classification, error) {
	text, err := c.client.GenerateText(ctx, c.model, prompt)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return revmoji.Interpret(text), nil
}
