// Package resume converts resume files of varying formats into plain text.
// Extraction is best-effort text recovery; no semantic parsing of
// resume structure happens here.
package resume

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Format identifies a supported resume file format.
type Format string

const (
	// FormatPDF is a PDF file read through its text layer
	FormatPDF Format = "pdf"
	// FormatDOCX is a Word document
	FormatDOCX Format = "docx"
	// FormatText is a plain text file
	FormatText Format = "txt"
	// FormatMarkdown is a markdown file stripped to plain text
	FormatMarkdown Format = "md"
)

// extractor converts a file at path into plain text.
type extractor func(path string) (string, error)

// formats is the dispatch table from file extension to format and
// extraction strategy. Adding a format means adding a row here.
var formats = map[string]struct {
	format  Format
	extract extractor
}{
	".pdf":      {FormatPDF, extractPDF},
	".docx":     {FormatDOCX, extractDOCX},
	".txt":      {FormatText, extractText},
	".md":       {FormatMarkdown, extractMarkdown},
	".markdown": {FormatMarkdown, extractMarkdown},
}

// DetectFormat maps a file path to its resume format.
// Returns UnsupportedFormatError for unknown extensions.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	entry, ok := formats[ext]
	if !ok {
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
	return entry.format, nil
}

// ExtractFile reads a resume file and returns its plain-text content.
// The strategy is chosen by extension; unknown extensions return
// UnsupportedFormatError, unreadable or corrupt files ExtractionError.
func ExtractFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	entry, ok := formats[ext]
	if !ok {
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}

	if _, err := os.Stat(path); err != nil {
		return "", &ExtractionError{Path: path, Message: "file not accessible", Cause: err}
	}

	text, err := entry.extract(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SupportedExtensions lists the recognized resume file extensions.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func supportedList() string {
	return strings.Join(SupportedExtensions(), ", ")
}

// extractText reads a plain text file as-is.
func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}
	return string(data), nil
}
