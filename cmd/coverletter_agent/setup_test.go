package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSetupCreatesDirAndTemplate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COVER_LETTER_OUTPUT_DIR", filepath.Join(dir, "output"))
	t.Setenv("COVER_LETTER_TEMPLATE", filepath.Join(dir, "templates", "cover_letter_template.txt"))

	require.NoError(t, runSetup(setupCmd, nil))

	info, err := os.Stat(filepath.Join(dir, "output"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(filepath.Join(dir, "templates", "cover_letter_template.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dear Hiring Manager")
}

func TestRunSetupKeepsExistingTemplate(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.txt")
	require.NoError(t, os.WriteFile(templatePath, []byte("custom template"), 0o644))

	t.Setenv("COVER_LETTER_OUTPUT_DIR", filepath.Join(dir, "output"))
	t.Setenv("COVER_LETTER_TEMPLATE", templatePath)

	require.NoError(t, runSetup(setupCmd, nil))

	data, err := os.ReadFile(templatePath)
	require.NoError(t, err)
	assert.Equal(t, "custom template", string(data))
}
