package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// monthNumbers maps month names to the two-digit form used in YYYY-MM dates.
var monthNumbers = map[string]string{
	"January": "01", "February": "02", "March": "03", "April": "04",
	"May": "05", "June": "06", "July": "07", "August": "08",
	"September": "09", "October": "10", "November": "11", "December": "12",
}

// Job-title vocabulary used to split the experience section into chunks and
// to anchor the precise title/company pattern. Titles outside this list fall
// through to the loose first-line strategy; tune the list, not the code.
const jobTitleWords = `Front-End Developer|Software Engineer|Developer|Engineer|Manager|Analyst|Designer`

// Chunks shorter than this are treated as splitter noise, not job entries.
const minJobChunkLen = 20

// Description lines at or under this length are discarded as noise; longer
// lines past the first become achievements only above the second threshold.
const (
	minDescriptionLineLen = 10
	minAchievementLineLen = 20
)

var (
	experienceSectionRe = regexp.MustCompile(`(?is)WORK EXPERIENCE\s+(.*?)\s+EDUCATION`)

	// a title word followed by a capitalized word opens a new job chunk
	jobBoundaryRe = regexp.MustCompile(`(?:` + jobTitleWords + `)\s+[A-Z]`)

	// precise strategy: "<position ending in a title word> <Company Name> <Month YYYY>"
	titleCompanyRe = regexp.MustCompile(`^(.*?(?:Developer|Engineer|Manager|Analyst|Designer))\s+([A-Z][a-zA-Z\s&]+?)\s+[A-Z][a-z]+\s+\d{4}`)

	dateRangeRe = regexp.MustCompile(`([A-Z][a-z]+\s+\d{4})\s*[-–]\s*([A-Z][a-z]+\s+\d{4}|Present)`)
	monthYearRe = regexp.MustCompile(`([A-Z][a-z]+)\s+(\d{4})`)

	entryLineSplitRe = regexp.MustCompile(`\n|\s{2,}`)
	monthYearStartRe = regexp.MustCompile(`^[A-Z][a-z]+\s+\d{4}`)
	titleWordStartRe = regexp.MustCompile(`^(?:Front-End|Software|Developer|Engineer)`)
)

// ExtractExperience segments the span between the WORK EXPERIENCE and
// EDUCATION headings into per-job chunks and parses each one. Chunks that do
// not yield both a position and a company are dropped as noise; dates,
// description and achievements are lenient and default instead.
func ExtractExperience(clean string) []Experience {
	experiences := []Experience{}
	m := experienceSectionRe.FindStringSubmatch(clean)
	if m == nil {
		return experiences
	}

	id := 1
	for _, chunk := range splitJobChunks(m[1]) {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) < minJobChunkLen {
			continue
		}
		exp := parseJobEntry(chunk, id)
		if exp.Position != "" && exp.Company != "" {
			experiences = append(experiences, exp)
			id++
		}
	}
	return experiences
}

// splitJobChunks cuts the experience span at every point where a known title
// word is followed by a capitalized word. This is a heuristic boundary, not
// a structural guarantee.
func splitJobChunks(section string) []string {
	locs := jobBoundaryRe.FindAllStringIndex(section, -1)
	if len(locs) == 0 {
		return []string{section}
	}
	var chunks []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			chunks = append(chunks, section[prev:loc[0]])
			prev = loc[0]
		}
	}
	chunks = append(chunks, section[prev:])
	return chunks
}

func parseJobEntry(entry string, id int) Experience {
	exp := Experience{ID: strconv.Itoa(id)}
	lines := splitEntryLines(entry)

	if m := titleCompanyRe.FindStringSubmatch(entry); m != nil {
		exp.Position = strings.TrimSpace(m[1])
		exp.Company = strings.TrimSpace(m[2])
	} else if len(lines) > 0 {
		// loose strategy: first two tokens are the position, the rest of the
		// first line is the company
		parts := strings.Fields(lines[0])
		if len(parts) >= 3 {
			exp.Position = strings.Join(parts[:2], " ")
			exp.Company = strings.Join(parts[2:], " ")
		}
	}

	if m := dateRangeRe.FindStringSubmatch(entry); m != nil {
		exp.StartDate = toYearMonth(m[1])
		if strings.Contains(strings.ToLower(m[2]), "present") {
			exp.Current = true
			exp.EndDate = ""
		} else {
			exp.EndDate = toYearMonth(m[2])
		}
	}

	var descLines []string
	if len(lines) > 1 {
		for _, line := range lines[1:] {
			if monthYearStartRe.MatchString(line) || titleWordStartRe.MatchString(line) {
				continue
			}
			if len(line) > minDescriptionLineLen {
				descLines = append(descLines, line)
			}
		}
	}
	if len(descLines) > 0 {
		exp.Description = descLines[0]
		for _, line := range descLines[1:] {
			if len(line) > minAchievementLineLen {
				exp.Achievements = append(exp.Achievements, line)
			}
		}
	}
	if len(exp.Achievements) == 0 {
		exp.Achievements = []string{""}
	}
	return exp
}

func splitEntryLines(entry string) []string {
	var lines []string
	for _, line := range entryLineSplitRe.Split(entry, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// toYearMonth converts "January 2020" to "2020-01". Unparseable input is
// returned unchanged.
func toYearMonth(monthYear string) string {
	m := monthYearRe.FindStringSubmatch(monthYear)
	if m == nil {
		return monthYear
	}
	num, ok := monthNumbers[m[1]]
	if !ok {
		num = "01"
	}
	return m[2] + "-" + num
}
