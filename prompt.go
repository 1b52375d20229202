package revmoji

import (
	"fmt"
	"unicode/utf8"
)

// MaxDiffChars caps how much diff text is embedded in the content-analysis
// prompt.
const MaxDiffChars = 50000

// TruncationMarker is appended to diff text that was cut at MaxDiffChars.
const TruncationMarker = "\n... [diff truncated]"

// TruncateDiff caps s at max bytes, cutting on a rune boundary and appending
// the truncation marker when a cut occurred.
func TruncateDiff(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + TruncationMarker
}

// BuildMetricsPrompt renders the metrics-only prompt from line counts.
func BuildMetricsPrompt(m ChangeMetrics) string {
	return fmt.Sprintf(`A pending code change adds %d lines and removes %d lines (%d changed lines total).

Classify the size and review effort of this change as a single emoji, from 😴
(trivial) through 🤯 (very hard to review).

Respond with JSON matching this schema:
{"emoji": "one emoji", "reasoning": "one short sentence"}`,
		m.Added, m.Removed, m.Total())
}

// BuildContentPrompt renders the content-analysis prompt around the diff
// text, truncated at MaxDiffChars.
func BuildContentPrompt(diffText string) string {
	return fmt.Sprintf(`Estimate the review effort for this pending change.

<diff>
%s
</diff>

## Scale

Pick exactly one emoji from this scale:
- 😴 trivial: comments, typos, whitespace, documentation only
- 🙂 simple: small, self-contained, low risk
- 😐 routine: ordinary change following familiar patterns, limited blast radius
- 🤔 moderate: needs real attention, touches shared code or configuration
- 😅 large but mechanical: many files, repetitive edits, low per-line risk
- 😰 complex: core logic, error handling, or data-handling changes with real risk
- 🤯 severe: architectural change, concurrency, migrations, or security-sensitive code

Weigh the kind of files touched (tests and docs are cheaper than core logic),
the risk of the change (behavior changes cost more than renames), and its
nature (mechanical edits are cheaper than novel logic).

Respond with JSON matching this schema:
{
  "emoji": "one emoji from the scale",
  "reasoning": "one or two sentences explaining the rating"
}

Example response:
{"emoji": "🤔", "reasoning": "Adds a new config knob and threads it through the request path; moderate but contained."}`,
		TruncateDiff(diffText, MaxDiffChars))
}
