// Package ingestion turns source documents (PDF, DOCX, plain text) into a
// single ordered sequence of cleaned lines for the extraction pipeline.
package ingestion

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
)

// whitespaceRuns collapses runs of two or more whitespace characters.
// PDF text extraction tends to encode layout as wide gaps; collapsing them
// to newlines restores a usable line structure.
var whitespaceRuns = regexp.MustCompile(`\s{2,}`)

// SupportedExt reports whether the extractor handles files with the given
// extension (lower-cased, including the dot).
func SupportedExt(ext string) bool {
	switch ext {
	case ".pdf", ".docx", ".doc", ".txt":
		return true
	}
	return false
}

// ExtractText reads a document and returns its linearized text plus the
// detected file type (the lower-cased extension). Unsupported extensions
// yield an UnsupportedTypeError; extraction failures an ExtractionError.
func ExtractText(path string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", ext, &ExtractionError{Path: path, Cause: err}
		}
		// Collapse layout gaps into line breaks before cleaning.
		return CleanText(whitespaceRuns.ReplaceAllString(res.Body, "\n")), ext, nil

	case ".docx", ".doc":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", ext, &ExtractionError{Path: path, Cause: err}
		}
		return CleanText(joinParagraphs(res.Body)), ext, nil

	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", ext, &ExtractionError{Path: path, Cause: err}
		}
		return CleanText(string(content)), ext, nil

	default:
		return "", ext, &UnsupportedTypeError{Ext: ext}
	}
}

// joinParagraphs rebuilds word-processor output as one non-empty paragraph
// per line, the shape the boundary scan expects for DOCX sources.
func joinParagraphs(body string) string {
	var paragraphs []string
	for _, line := range strings.Split(body, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return strings.Join(paragraphs, "\n")
}
