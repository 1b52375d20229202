package mock

import "github.com/fwojciec/revmoji"

// Compile-time interface verification.
var _ revmoji.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of revmoji.Summarizer.
type Summarizer struct {
	SummarizeFn func(diffText string) (revmoji.ChangeMetrics, error)
}

func (s *Summarizer) Summarize(diffText string) (revmoji.ChangeMetrics, error) {
	return s.SummarizeFn(diffText)
}
