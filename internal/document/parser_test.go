package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilePlainText(t *testing.T) {
	p := NewParser(t.TempDir())

	content := "JOHANN BACH Front-End Developer j.bach@email.com"
	doc, err := p.ParseFile("resume.txt", strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, ".txt", doc.FileType)
	assert.Equal(t, int64(len(content)), doc.FileSize)
	assert.Equal(t, content, doc.Text)
}

func TestParseFileUnsupportedType(t *testing.T) {
	p := NewParser(t.TempDir())

	_, err := p.ParseFile("resume.xlsx", strings.NewReader("whatever"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestParseFileExtensionCaseInsensitive(t *testing.T) {
	p := NewParser(t.TempDir())

	doc, err := p.ParseFile("resume.TXT", strings.NewReader("text body"))
	require.NoError(t, err)
	assert.Equal(t, ".txt", doc.FileType)
}
