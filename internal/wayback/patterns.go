package wayback

import (
	"strings"

	"github.com/richeeta/r3c0nkthx/internal/model"
)

// defaultPatterns is the builtin set of sensitive path and parameter
// substrings. Matching is plain case-sensitive substring containment,
// no regex. The slice order drives report output order.
var defaultPatterns = []string{
	"/api/",
	"/admin/",
	"/js/",
	"/account/",
	"/cgi-bin/",
	"/wp-admin/",
	"response_type=token",
	"password=",
	"isAdmin=",
}

// DefaultPatterns returns a copy of the builtin pattern set.
// Callers may append extra patterns from configuration without
// affecting the builtin slice.
func DefaultPatterns() []string {
	patterns := make([]string, len(defaultPatterns))
	copy(patterns, defaultPatterns)
	return patterns
}

// Scan counts, per pattern, how many URLs contain that pattern.
// A URL contributes at most one to each pattern's count no matter how many
// times the pattern occurs within it; a single URL may match several
// patterns. Every pattern key is present in the result, zero-initialized,
// so reporters can distinguish "scanned, nothing found" from "not scanned".
//
// Design decision: a fresh counts map is built per call. There is no shared
// mutable pattern state between domains.
func Scan(urls []string, patterns []string) model.PatternCounts {
	counts := make(model.PatternCounts, len(patterns))
	for _, pattern := range patterns {
		counts[pattern] = 0
	}

	for _, url := range urls {
		for _, pattern := range patterns {
			if strings.Contains(url, pattern) {
				counts[pattern]++
			}
		}
	}

	return counts
}
