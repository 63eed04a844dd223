package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducationDegreeBlock(t *testing.T) {
	clean, _ := Normalize("EDUCATION Bachelor of Computer Science Springfield University 2016 - 2020 SKILLS")
	education := ExtractEducation(clean)

	require.Len(t, education, 1)
	edu := education[0]
	assert.Equal(t, "Bachelor", edu.Degree)
	assert.Equal(t, "Computer Science", edu.Field)
	assert.Equal(t, "Springfield University", edu.Institution)
	assert.Equal(t, "2016-09", edu.StartDate)
	assert.Equal(t, "2020-05", edu.EndDate)
	assert.Equal(t, "", edu.GPA)
	assert.Equal(t, []string{""}, edu.Achievements)
	assert.Equal(t, "1", edu.ID)
}

func TestExtractEducationFieldDefault(t *testing.T) {
	clean, _ := Normalize("EDUCATION Diploma Riverdale College 2010 - 2012 SKILLS")
	education := ExtractEducation(clean)

	require.Len(t, education, 1)
	assert.Equal(t, "Diploma", education[0].Degree)
	assert.Equal(t, "Riverdale College", education[0].Institution)
	assert.Equal(t, defaultFieldOfStudy, education[0].Field)
}

func TestExtractEducationSectionAbsence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no education heading", "WORK EXPERIENCE Software Engineer Acme Corp January 2020 - Present EDUCATION"},
		{"education without skills terminator", "EDUCATION Bachelor of Science Springfield University 2016 - 2020"},
		{"no degree block inside section", "EDUCATION attended some classes for a while SKILLS"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, _ := Normalize(tt.raw)
			assert.Empty(t, ExtractEducation(clean))
		})
	}
}

func TestExtractEducationOnlyFirstDegreeBlock(t *testing.T) {
	clean, _ := Normalize("EDUCATION Master of Data Science Springfield University 2020 - 2022 Bachelor of Arts Shelbyville College 2016 - 2020 SKILLS")
	education := ExtractEducation(clean)

	require.Len(t, education, 1)
	assert.Equal(t, "Master", education[0].Degree)
	assert.Equal(t, "Springfield University", education[0].Institution)
	assert.Equal(t, "2020-09", education[0].StartDate)
	assert.Equal(t, "2022-05", education[0].EndDate)
}
