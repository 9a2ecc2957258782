package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveResumeMutuallyExclusive(t *testing.T) {
	_, err := resolveResume("resume.pdf", "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestResolveResumeFromText(t *testing.T) {
	text, err := resolveResume("", "  Jane Doe, Go engineer.  ")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe, Go engineer.", text)
}

func TestResolveResumeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nGo engineer\n"), 0o644))

	text, err := resolveResume(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo engineer", text)
}

func TestResolveResumeMissingFile(t *testing.T) {
	_, err := resolveResume(filepath.Join(t.TempDir(), "nope.txt"), "")
	require.Error(t, err)
}

func TestPromptResumeReadsUntilBlankLine(t *testing.T) {
	in := strings.NewReader("Jane Doe\nGo engineer\n\nignored after blank\n")
	var out bytes.Buffer

	text, err := promptResume(in, &out)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo engineer", text)
	assert.Contains(t, out.String(), "Paste your resume")
}

func TestPromptResumeReadsUntilEOF(t *testing.T) {
	in := strings.NewReader("Jane Doe\nGo engineer")
	var out bytes.Buffer

	text, err := promptResume(in, &out)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo engineer", text)
}

func TestPromptResumeEmptyInput(t *testing.T) {
	var out bytes.Buffer
	_, err := promptResume(strings.NewReader(""), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no resume text")
}
