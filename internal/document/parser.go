package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// Parser converts uploaded resume files into plain text. Binary decoding is
// delegated to docconv; the extraction engine only ever sees text.
type Parser struct {
	uploadsDir string
}

// ParsedDocument is the decode result handed to the extraction engine.
type ParsedDocument struct {
	Filename string
	FileType string
	FileSize int64
	Text     string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{
		uploadsDir: uploadsDir,
	}
}

// ParseFile saves the upload and extracts plain text from PDF/DOCX/TXT
// files. Unrecognized extensions and decode failures are terminal: there is
// no partial result for a file that could not produce text.
func (p *Parser) ParseFile(filename string, reader io.Reader) (*ParsedDocument, error) {
	filePath := filepath.Join(p.uploadsDir, filename)
	if err := os.MkdirAll(p.uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	var text string

	switch fileType {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse resume file: %w", err)
		}
		text = res.Body
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}

	return &ParsedDocument{
		Filename: filename,
		FileType: fileType,
		FileSize: size,
		Text:     text,
	}, nil
}
