// Package resume converts unstructured plain text into a structured
// professional-profile record using layered pattern-matching heuristics.
//
// The engine is a stateless collection of pure functions: one input string
// in, one record out, no I/O and no shared mutable state. Absence of a
// recognizable pattern is never an error; each extractor degrades to its
// documented default instead, so Extract is total over all string inputs.
package resume

import (
	"sync"
	"time"
)

// Extract runs the full pipeline: normalization, then the five field
// extractors over the same immutable inputs, then assembly. The extractors
// have no data dependencies on each other and run concurrently; each writes
// only its own slot of the result.
func Extract(raw string) *Resume {
	clean, lines := Normalize(raw)

	r := &Resume{}
	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); r.PersonalInfo = ExtractPersonalInfo(clean, lines) }()
	go func() { defer wg.Done(); r.Summary = ExtractSummary(clean) }()
	go func() { defer wg.Done(); r.Experience = ExtractExperience(clean) }()
	go func() { defer wg.Done(); r.Education = ExtractEducation(clean) }()
	go func() { defer wg.Done(); r.Skills = ExtractSkills(clean) }()
	wg.Wait()

	now := time.Now().UTC().Format(time.RFC3339)
	r.CreatedAt = now
	r.UpdatedAt = now
	return r
}
