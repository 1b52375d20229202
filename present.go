package revmoji

import (
	"fmt"
	"io"
)

// Present writes the classification to w. The emoji goes on its own line;
// verbose adds a second line with the reasoning. Stdout carries nothing else,
// so scripts can consume the first line directly.
func Present(w io.Writer, c *Classification, verbose bool) {
	fmt.Fprintln(w, c.Emoji)
	if verbose {
		fmt.Fprintln(w, "Reasoning: "+c.Reasoning)
	}
}
