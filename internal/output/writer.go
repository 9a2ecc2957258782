// Package output persists generated cover letters to timestamped files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// WriteError represents a filesystem failure while persisting a letter.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("write error for %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Writer persists letters under a base directory.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter creates a Writer for the given output directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// EnsureDir creates the output directory if it does not exist.
func (w *Writer) EnsureDir() error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return &WriteError{Path: w.dir, Message: "failed to create output directory", Cause: err}
	}
	return nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write saves content under the given base name with a timestamp
// suffix, creating the directory if needed. When name is empty a
// default "cover_letter" base is used. Two writes in the same second
// never collide: an _N counter is appended until the name is free.
func (w *Writer) Write(name, content string) (string, error) {
	if err := w.EnsureDir(); err != nil {
		return "", err
	}

	base := SanitizeBaseName(name)
	if base == "" {
		base = "cover_letter"
	}
	stamp := w.now().Format("20060102_150405")

	path := filepath.Join(w.dir, fmt.Sprintf("%s_%s.txt", base, stamp))
	for counter := 1; fileExists(path); counter++ {
		path = filepath.Join(w.dir, fmt.Sprintf("%s_%s_%d.txt", base, stamp, counter))
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", &WriteError{Path: path, Message: "failed to write file", Cause: err}
	}
	return path, nil
}

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeBaseName turns free-form text (a company or position name)
// into a safe filename fragment.
func SanitizeBaseName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".txt")
	name = unsafeNameRe.ReplaceAllString(name, "_")
	return strings.Trim(name, "._-")
}

// BaseNameFor derives a default base name from company and position,
// e.g. "cover_letter_Acme_Platform_Engineer".
func BaseNameFor(company, position string) string {
	parts := []string{"cover_letter"}
	if s := SanitizeBaseName(company); s != "" {
		parts = append(parts, s)
	}
	if s := SanitizeBaseName(position); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "_")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
