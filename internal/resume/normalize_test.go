package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"tabs and newlines", "a\n\n b\tc", "a b c"},
		{"leading and trailing", "   hello   world  ", "hello world"},
		{"windows line endings", "one\r\ntwo", "one two"},
		{"empty", "", ""},
		{"pure whitespace", " \t\n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, _ := Normalize(tt.raw)
			assert.Equal(t, tt.want, clean)
		})
	}
}

func TestNormalizeLineBoundaries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"sentence boundary before capital",
			"Built dashboards. Shipped features",
			[]string{"Built dashboards", "Shipped features"},
		},
		{
			"year followed by capital",
			"January 2020 Acme Corp",
			[]string{"January 2020", "Acme Corp"},
		},
		{
			"year not followed by capital stays joined",
			"January 2020 to present",
			[]string{"January 2020 to present"},
		},
		{
			"lowercase after period stays joined",
			"e.g. something small",
			[]string{"e.g. something small"},
		},
		{
			"mixed boundaries",
			"Jane Doe 2019 Acme Inc. Led the team",
			[]string{"Jane Doe 2019", "Acme Inc", "Led the team"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, lines := Normalize(tt.raw)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	clean, lines := Normalize("")
	assert.Equal(t, "", clean)
	assert.Empty(t, lines)
}

func TestNormalizeNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		string([]byte{0xff, 0xfe, 0x00, 0x41}),
		strings.Repeat("x ", 100000),
		"....    2020    ....",
	}
	for _, in := range inputs {
		clean, lines := Normalize(in)
		_ = clean
		_ = lines
	}
}
