package revmoji

import (
	"encoding/json"
	"strings"
)

// Extractor attempts to pull a classification out of model output text.
// Implementations return nil when the text yields nothing usable.
type Extractor interface {
	Extract(text string) *Classification
}

// Chain tries extractors in order and returns the first non-nil result.
type Chain []Extractor

// Extract implements Extractor.
func (c Chain) Extract(text string) *Classification {
	for _, e := range c {
		if result := e.Extract(text); result != nil {
			return result
		}
	}
	return nil
}

// DefaultChain returns the standard extraction order: structured JSON first,
// then a raw emoji scan, then the fixed fallback.
func DefaultChain() Chain {
	return Chain{
		StructuredExtractor{},
		EmojiScanExtractor{},
		FallbackExtractor{},
	}
}

// Interpret runs the default chain over model output text. It never returns
// nil; the chain ends in a fallback that always succeeds.
func Interpret(text string) *Classification {
	return DefaultChain().Extract(text)
}

// Compile-time interface verification.
var (
	_ Extractor = (Chain)(nil)
	_ Extractor = (*StructuredExtractor)(nil)
	_ Extractor = (*EmojiScanExtractor)(nil)
	_ Extractor = (*FallbackExtractor)(nil)
)

// StructuredExtractor parses the text as a JSON object with emoji and
// reasoning fields. Both must be non-empty for the result to count.
type StructuredExtractor struct{}

// Extract implements Extractor. Markdown code fences around the object are
// tolerated; models add them even when told not to.
func (StructuredExtractor) Extract(text string) *Classification {
	var c Classification
	if err := json.Unmarshal([]byte(trimFences(text)), &c); err != nil {
		return nil
	}
	if c.Emoji == "" || c.Reasoning == "" {
		return nil
	}
	return &c
}

// trimFences strips a surrounding markdown code fence, including an optional
// language tag on the opening line.
func trimFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// EmojiScanExtractor returns the first code point that falls in a recognized
// emoji block, with empty reasoning.
type EmojiScanExtractor struct{}

// emojiRanges are the Unicode blocks recognized by the scan, in scan-agnostic
// order: emoticons, miscellaneous symbols and pictographs, transport and map
// symbols, regional indicators (flags), supplemental symbols and pictographs,
// and symbols and pictographs extended-A.
var emojiRanges = [...]struct{ lo, hi rune }{
	{0x1F600, 0x1F64F},
	{0x1F300, 0x1F5FF},
	{0x1F680, 0x1F6FF},
	{0x1F1E6, 0x1F1FF},
	{0x1F900, 0x1F9FF},
	{0x1FA70, 0x1FAFF},
}

// Extract implements Extractor.
func (EmojiScanExtractor) Extract(text string) *Classification {
	for _, r := range text {
		if isEmoji(r) {
			return &Classification{Emoji: string(r)}
		}
	}
	return nil
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng.lo && r <= rng.hi {
			return true
		}
	}
	return false
}

// FallbackExtractor always succeeds with the fixed fallback pair.
type FallbackExtractor struct{}

// Extract implements Extractor.
func (FallbackExtractor) Extract(string) *Classification {
	return Fallback()
}
