// Package extractor pulls plain text out of uploaded documents. Extraction
// is stateless; every function takes a path and returns the text content.
package extractor

import (
	"path/filepath"
	"strings"
)

// MaxContentLen caps extracted text at 1,000,000 characters.
const MaxContentLen = 1_000_000

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// AllowedFile reports whether the filename has a supported extension.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Extract dispatches on the file extension. Callers must have validated the
// extension with AllowedFile first.
func Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return ExtractPDF(path)
	case ".doc", ".docx":
		return ExtractDocx(path)
	default:
		return ExtractTxt(path)
	}
}

func truncate(content string) string {
	runes := []rune(content)
	if len(runes) > MaxContentLen {
		return string(runes[:MaxContentLen])
	}
	return content
}
