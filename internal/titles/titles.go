// Package titles parses and validates user-submitted batches of blog titles.
package titles

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxBatchSize is the largest number of titles accepted in one submission.
const MaxBatchSize = 10

// separatorPattern splits raw input on commas and line breaks.
var separatorPattern = regexp.MustCompile(`[,\n\r]+`)

// ValidationError reports invalid batch input: an empty title list or more
// titles than MaxBatchSize. A batch that fails validation creates nothing.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Parse splits free-form text into a list of blog titles. Titles are
// separated by commas or new lines; surrounding whitespace is trimmed and
// duplicates are removed case-insensitively, preserving first-seen order.
//
// Parse returns a *ValidationError when no titles remain after cleaning or
// when more than MaxBatchSize distinct titles were submitted.
func Parse(raw string) ([]string, error) {
	var tokens []string
	for _, token := range separatorPattern.Split(raw, -1) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 {
		return nil, &ValidationError{Reason: "provide at least one title to generate"}
	}

	unique := uniquePreserveOrder(tokens)

	if len(unique) > MaxBatchSize {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("too many titles: got %d, the maximum per batch is %d", len(unique), MaxBatchSize),
		}
	}

	return unique, nil
}

// uniquePreserveOrder removes case-insensitive duplicates while keeping the
// original order of first occurrence.
func uniquePreserveOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	var unique []string
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}
	return unique
}
