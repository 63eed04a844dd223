package resume

import (
	"regexp"
	"strings"
)

var summaryRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)CAREER OBJECTIVE\s+(.*?)\s+(?:WORK EXPERIENCE|EXPERIENCE|EDUCATION|SKILLS)`),
	regexp.MustCompile(`(?is)(?:SUMMARY|PROFILE|OBJECTIVE)\s+(.*?)\s+(?:WORK EXPERIENCE|EXPERIENCE|EDUCATION|SKILLS)`),
}

// ExtractSummary returns the body of the career objective or summary section
// with internal whitespace collapsed. A "CAREER OBJECTIVE" heading is
// preferred over the generic summary headings. This is the only extractor
// with no fallback text: a missing heading yields an empty string.
func ExtractSummary(clean string) string {
	for _, re := range summaryRes {
		if m := re.FindStringSubmatch(clean); m != nil {
			return strings.TrimSpace(whitespaceRe.ReplaceAllString(m[1], " "))
		}
	}
	return ""
}
