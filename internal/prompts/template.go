package prompts

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLetterTemplate is written by setup when no template exists.
// The single-brace placeholders are filled in by the model, not by us.
const DefaultLetterTemplate = `Dear Hiring Manager,

I am writing to express my strong interest in the {position} position at {company}. With my background in {relevant_experience}, I am excited about the opportunity to contribute to your team.

{body_paragraph_1}

{body_paragraph_2}

Thank you for considering my application. I look forward to hearing from you soon.

Sincerely,
[Your Name]`

// ReadLetterTemplate returns the cover letter template at path,
// creating the default template first if the file does not exist.
func ReadLetterTemplate(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := CreateDefaultLetterTemplate(path); err != nil {
			return "", err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return string(data), nil
}

// CreateDefaultLetterTemplate writes the default template to path,
// creating parent directories as needed.
func CreateDefaultLetterTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultLetterTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write template %s: %w", path, err)
	}
	return nil
}
