// Package gitdiff implements diff summarization using bluekeyes/go-gitdiff.
package gitdiff

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/revmoji"
)

// Compile-time interface verification.
var _ revmoji.Summarizer = (*Summarizer)(nil)

// Summarizer counts added and removed lines in unified diff text. Parsing
// structurally separates hunk content from +++/--- file headers, so headers
// are never miscounted as changes.
type Summarizer struct{}

// NewSummarizer creates a new Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize parses diffText and returns its change metrics. Metadata-only
// diffs (mode changes, binary files, renames without edits) produce zero
// counts.
func (s *Summarizer) Summarize(diffText string) (revmoji.ChangeMetrics, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(diffText))
	if err != nil {
		return revmoji.ChangeMetrics{}, fmt.Errorf("parse diff: %w", err)
	}

	var m revmoji.ChangeMetrics
	for _, f := range files {
		for _, frag := range f.TextFragments {
			for _, line := range frag.Lines {
				switch line.Op {
				case gitdiff.OpAdd:
					m.Added++
				case gitdiff.OpDelete:
					m.Removed++
				}
			}
		}
	}
	return m, nil
}
