package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// skillCategory pairs a category heading with the vocabulary its tokens are
// matched against. Order is scan order, so output stays stable.
type skillCategory struct {
	name     string
	keywords []string
}

var skillCategories = []skillCategory{
	{"Languages", []string{"HTML", "CSS", "JavaScript", "Python", "Java", "C++", "C#", "PHP", "Ruby", "Go", "Rust", "TypeScript"}},
	{"Libraries", []string{"React", "jQuery", "Redux", "Vue", "Angular", "Bootstrap", "Tailwind"}},
	{"Frameworks", []string{"Angular.js", "Node.js", "Express", "Django", "Flask", "Spring", "Laravel"}},
	{"Testing", []string{"Jest", "Mocha", "Cypress", "Selenium", "JUnit"}},
	{"Tools", []string{"Git", "Docker", "Kubernetes", "Jenkins", "Webpack", "Babel"}},
	{"Database", []string{"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite"}},
}

// Well-known technologies scanned for when the category strategy yields
// nothing at all.
var fallbackTechnologies = []string{
	"HTML", "CSS", "JavaScript", "Python", "React", "jQuery", "Redux",
	"Angular.js", "Node.js", "Jest",
}

// Single-keyword category lookup for fallback hits. Ordered so the first
// matching category wins; unmatched technologies land in "Other".
var fallbackCategories = []skillCategory{
	{"Programming", []string{"html", "css", "javascript", "python", "java", "typescript"}},
	{"Frontend", []string{"react", "vue", "angular", "jquery"}},
	{"Backend", []string{"node.js", "express", "django", "flask"}},
	{"Testing", []string{"jest", "mocha", "cypress"}},
	{"Tools", []string{"git", "docker", "webpack"}},
}

var (
	skillsSectionRe = regexp.MustCompile(`(?is)\bSKILLS\s+(.*)$`)
	numericTokenRe  = regexp.MustCompile(`^\d+$`)

	// Per category: the heading (case-insensitive) followed by a run of
	// non-capitalized text. The run class stays case-sensitive so lowercase
	// skill tokens are captured.
	categoryRunRes = buildCategoryRunRes()
)

func buildCategoryRunRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(skillCategories))
	for i, cat := range skillCategories {
		res[i] = regexp.MustCompile(`(?i:` + cat.name + `)\s+([^A-Z]+)`)
	}
	return res
}

// ExtractSkills tokenizes everything after the SKILLS heading against the
// fixed category vocabularies. "Languages" hits are relabeled "Programming"
// in the output. If no category yields a single skill, a literal scan for
// well-known technology names runs instead. Proficiency is never inferred
// from the text: every skill is emitted at the Advanced level.
func ExtractSkills(clean string) []Skill {
	skills := []Skill{}
	m := skillsSectionRe.FindStringSubmatch(clean)
	if m == nil {
		return skills
	}
	section := m[1]

	id := 1
	for i, cat := range skillCategories {
		run := categoryRunRes[i].FindStringSubmatch(section)
		if run == nil {
			continue
		}
		category := cat.name
		if category == "Languages" {
			category = "Programming"
		}
		for _, tok := range strings.Fields(run[1]) {
			if len(tok) <= 1 || numericTokenRe.MatchString(tok) || !matchesVocabulary(tok, cat.keywords) {
				continue
			}
			skills = append(skills, Skill{
				ID:       strconv.Itoa(id),
				Name:     tok,
				Level:    LevelAdvanced,
				Category: category,
			})
			id++
		}
	}

	if len(skills) == 0 {
		for _, tech := range fallbackTechnologies {
			if !strings.Contains(section, tech) {
				continue
			}
			skills = append(skills, Skill{
				ID:       strconv.Itoa(id),
				Name:     tech,
				Level:    LevelAdvanced,
				Category: categorizeSkill(tech),
			})
			id++
		}
	}
	return skills
}

// matchesVocabulary reports whether the token fuzzily overlaps a vocabulary
// keyword: a case-insensitive substring in either direction.
func matchesVocabulary(token string, keywords []string) bool {
	lower := strings.ToLower(token)
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		if strings.Contains(kwLower, lower) || strings.Contains(lower, kwLower) {
			return true
		}
	}
	return false
}

func categorizeSkill(name string) string {
	lower := strings.ToLower(name)
	for _, cat := range fallbackCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.name
			}
		}
	}
	return "Other"
}
