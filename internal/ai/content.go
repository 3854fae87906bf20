package ai

import (
	"regexp"
	"strings"
)

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// normalizeContent collapses excessive whitespace in model output while
// maintaining paragraph breaks.
func normalizeContent(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = excessBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
