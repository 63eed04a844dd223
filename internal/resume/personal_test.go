package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func extractPersonal(raw string) PersonalInfo {
	clean, lines := Normalize(raw)
	return ExtractPersonalInfo(clean, lines)
}

func TestExtractPersonalInfoContactFields(t *testing.T) {
	info := extractPersonal("jane.doe@example.com (555) 123-4567 Portland, OR")

	assert.Equal(t, "jane.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "Portland, OR", info.Location)
}

func TestExtractPersonalInfoNameStrategies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"all-caps run terminated by title keyword",
			"JOHANN BACH Front-End Developer j.bach@email.com",
			"JOHANN BACH",
		},
		{
			"capitalized first line with trailing title stripped",
			"Jane Doe Senior Engineer at large",
			"Jane Doe",
		},
		{
			"capitalized first line without title keyword",
			"Jane Doe loves computers",
			"Jane Doe loves computers",
		},
		{
			"unrecoverable falls back to placeholder",
			"no usable header here",
			placeholderName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPersonal(tt.raw).Name)
		})
	}
}

func TestExtractPersonalInfoLinkedInFlag(t *testing.T) {
	assert.Equal(t, "LinkedIn", extractPersonal("find me on linkedin today").LinkedIn)
	assert.Equal(t, "", extractPersonal("no profile links at all").LinkedIn)
}

func TestExtractPersonalInfoPlaceholders(t *testing.T) {
	info := extractPersonal("")

	assert.Equal(t, "1", info.ID)
	assert.Equal(t, placeholderName, info.Name)
	assert.Equal(t, placeholderEmail, info.Email)
	assert.Equal(t, placeholderPhone, info.Phone)
	assert.Equal(t, placeholderLocation, info.Location)
	assert.Equal(t, "", info.LinkedIn)
	assert.Equal(t, "", info.Website)
}

func TestExtractPersonalInfoPhoneVariants(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"call 555-123-4567 now", "555-123-4567"},
		{"call 555.123.4567 now", "555.123.4567"},
		{"call (555) 123-4567 now", "(555) 123-4567"},
		{"no digits here", placeholderPhone},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPersonal(tt.raw).Phone)
		})
	}
}
