package cratedocs

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTextLength is the number of characters kept before a page is truncated.
const MaxTextLength = 8000

// NormalizeSpace collapses every run of whitespace into a single space and
// trims the result.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncationSuffix is appended to truncated text.
func TruncationSuffix(url string) string {
	return fmt.Sprintf("\n\n[Content truncated. Full documentation available at %s]", url)
}

// Truncate returns text unchanged when it holds at most MaxTextLength
// characters. Longer text is cut to MaxTextLength characters and followed by
// TruncationSuffix(url).
func Truncate(text, url string) string {
	if utf8.RuneCountInString(text) <= MaxTextLength {
		return text
	}

	// Cut on a rune boundary so multi-byte characters are never split.
	n := 0
	for i := range text {
		if n == MaxTextLength {
			return text[:i] + TruncationSuffix(url)
		}
		n++
	}
	return text
}
