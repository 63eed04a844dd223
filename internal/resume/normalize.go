package resume

import (
	"regexp"
	"sort"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Logical line boundaries inside collapsed text: a sentence end followed
	// by a capitalized word, or a 4-digit year running into a capitalized
	// word (common start of the next job or education entry).
	sentenceBoundaryRe = regexp.MustCompile(`\.\s[A-Z]`)
	yearBoundaryRe     = regexp.MustCompile(`\d{4}\s+[A-Z]`)
)

// Normalize collapses whitespace runs into single spaces and segments the
// result into trimmed, non-empty logical lines. It succeeds on any input;
// empty input yields an empty string and no lines.
func Normalize(raw string) (string, []string) {
	clean := strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
	return clean, splitLines(clean)
}

// a boundary removes the half-open byte range [start, end) from the text and
// starts a new line at end.
type boundary struct {
	start, end int
}

func splitLines(clean string) []string {
	var cuts []boundary
	for _, m := range sentenceBoundaryRe.FindAllStringIndex(clean, -1) {
		// drop the period, keep the capitalized continuation
		cuts = append(cuts, boundary{m[0], m[0] + 1})
	}
	for _, m := range yearBoundaryRe.FindAllStringIndex(clean, -1) {
		// keep the year and the capital, drop the whitespace between them
		cuts = append(cuts, boundary{m[0] + 4, m[1] - 1})
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].start < cuts[j].start })

	var lines []string
	prev := 0
	for _, c := range cuts {
		if c.start < prev {
			continue
		}
		if line := strings.TrimSpace(clean[prev:c.start]); line != "" {
			lines = append(lines, line)
		}
		prev = c.end
	}
	if line := strings.TrimSpace(clean[prev:]); line != "" {
		lines = append(lines, line)
	}
	return lines
}
