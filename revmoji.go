// Package revmoji provides domain types for classifying the review effort of
// pending changes as a single emoji.
package revmoji

import "context"

// ChangeMetrics summarizes a diff as line counts.
type ChangeMetrics struct {
	Added   int // lines added (single "+" marker)
	Removed int // lines removed (single "-" marker)
}

// Total returns the combined number of changed lines.
func (m ChangeMetrics) Total() int {
	return m.Added + m.Removed
}

// Classification is the emoji/reasoning pair produced for a change.
type Classification struct {
	Emoji     string `json:"emoji"`
	Reasoning string `json:"reasoning"`
}

// Fixed sentinel values. The output contract guarantees an emoji on every
// successful run, so both the empty-diff case and the unparseable-response
// case map to fixed classifications rather than errors.
const (
	NoChangesEmoji     = "💤"
	NoChangesReasoning = "no changes to review"
	FallbackEmoji      = "🤷"
	FallbackReasoning  = "parsing error"
)

// NoChanges returns the classification emitted when the filtered diff is empty.
func NoChanges() *Classification {
	return &Classification{Emoji: NoChangesEmoji, Reasoning: NoChangesReasoning}
}

// Fallback returns the classification used when the remote response yields
// nothing usable.
func Fallback() *Classification {
	return &Classification{Emoji: FallbackEmoji, Reasoning: FallbackReasoning}
}

// GitRunner provides access to git operations via shell commands.
type GitRunner interface {
	// IsRepo reports whether repoPath is inside a git repository.
	IsRepo(ctx context.Context, repoPath string) (bool, error)
	// ResolveBaseRef returns the reference to diff against: the first trunk
	// candidate that exists, or a fallback to the previous commit.
	ResolveBaseRef(ctx context.Context, repoPath string) (string, error)
	// Diff returns the working-tree diff against baseRef with generated
	// files excluded. An empty string is a valid result meaning no changes.
	Diff(ctx context.Context, repoPath, baseRef string) (string, error)
}

// Summarizer computes change metrics from raw diff text.
type Summarizer interface {
	Summarize(diffText string) (ChangeMetrics, error)
}

// Classifier sends a rendered prompt to a model and returns a classification.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (*Classification, error)
}
