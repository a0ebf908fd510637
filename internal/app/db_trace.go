package app

import (
	"regexp"
	"strings"
)

// Traced statements get collapsed whitespace and a hard length cap so span
// attributes stay readable in the trace UI.
const maxTracedQueryLength = 512

var collapseWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return trimmed
	}

	flat := collapseWhitespace.ReplaceAllString(trimmed, " ")
	if len(flat) > maxTracedQueryLength {
		return flat[:maxTracedQueryLength] + "..."
	}
	return flat
}
