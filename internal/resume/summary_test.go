package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"career objective preferred",
			"CAREER OBJECTIVE Build reliable software. WORK EXPERIENCE whatever",
			"Build reliable software.",
		},
		{
			"summary heading",
			"SUMMARY Seasoned engineer with broad experience. EDUCATION whatever",
			"Seasoned engineer with broad experience.",
		},
		{
			"profile heading",
			"PROFILE Ten years shipping products. SKILLS whatever",
			"Ten years shipping products.",
		},
		{
			"case insensitive headings",
			"Career Objective Keep learning every day. Skills whatever",
			"Keep learning every day.",
		},
		{
			"no heading yields empty",
			"just some text with no section markers",
			"",
		},
		{
			"heading without a following section yields empty",
			"CAREER OBJECTIVE dangling text with no terminator",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, _ := Normalize(tt.raw)
			assert.Equal(t, tt.want, ExtractSummary(clean))
		})
	}
}
