package mock

import (
	"context"

	"github.com/fwojciec/revmoji"
)

// Compile-time interface verification.
var _ revmoji.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of revmoji.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, prompt string) (*revmoji.Classification, error)
}

func (c *Classifier) Classify(ctx context.Context, prompt string) (*revmoji.Classification, error) {
	return c.ClassifyFn(ctx, prompt)
}
