package resume

import (
	"regexp"
	"strings"
)

const defaultFieldOfStudy = "Computer Science"

var (
	educationSectionRe = regexp.MustCompile(`(?is)EDUCATION\s+(.*?)\s+SKILLS`)

	// degree keyword, an institution ending in a school word, and a
	// "YYYY - YYYY" range, in document order
	degreeEntryRe = regexp.MustCompile(`\b((?i:Bachelor|Master|PhD|Associate|Diploma))\b.*?([A-Z][A-Za-z&]*\s+(?:University|College|Institute))\b.*?(\d{4})\s*[-–]\s*(\d{4})`)

	// field of study: capitalized run after "of"/"in", bounded by the
	// institution name
	fieldOfStudyRe = regexp.MustCompile(`\b(?i:Bachelor|Master|PhD|Associate|Diploma)\b.*?\b(?:of|in)\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*?)\s+[A-Z][A-Za-z&]*\s+(?:University|College|Institute)`)
)

// ExtractEducation recovers a single education entry from the span between
// the EDUCATION and SKILLS headings. Only the first matching degree block is
// emitted. Start and end dates are synthesized on an academic calendar:
// September of the start year, May of the end year. GPA is never populated.
func ExtractEducation(clean string) []Education {
	education := []Education{}
	m := educationSectionRe.FindStringSubmatch(clean)
	if m == nil {
		return education
	}
	section := m[1]

	dm := degreeEntryRe.FindStringSubmatch(section)
	if dm == nil {
		return education
	}

	education = append(education, Education{
		ID:           "1",
		Institution:  strings.TrimSpace(dm[2]),
		Degree:       dm[1],
		Field:        extractFieldOfStudy(section),
		StartDate:    dm[3] + "-09",
		EndDate:      dm[4] + "-05",
		Achievements: []string{""},
	})
	return education
}

func extractFieldOfStudy(section string) string {
	if m := fieldOfStudyRe.FindStringSubmatch(section); m != nil {
		return strings.TrimSpace(m[1])
	}
	return defaultFieldOfStudy
}
