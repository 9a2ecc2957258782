// Package compose builds the generation prompt from a job posting and resume.
// Composition is a pure function: identical inputs always yield an
// identical prompt string.
package compose

import (
	"unicode/utf8"

	"github.com/jonathan/coverletter-agent/internal/prompts"
	"github.com/jonathan/coverletter-agent/internal/types"
)

// Input caps keep the prompt within a conservative token count.
const (
	MaxJobDescriptionChars = 2000
	MaxResumeChars         = 800
)

// Fallbacks used when neither scraping nor overrides produced a value.
const (
	fallbackCompany  = "the organization"
	fallbackPosition = "the position"
)

// Prompt renders the cover letter prompt for a generation request.
// The letter template is passed in (it lives on disk, so loading it is
// the caller's side effect, not ours).
func Prompt(req *types.GenerationRequest, letterTemplate string) string {
	company := req.EffectiveCompany()
	if company == "" {
		company = fallbackCompany
	}
	position := req.EffectivePosition()
	if position == "" {
		position = fallbackPosition
	}

	template := prompts.MustGet("generation.json", "cover_letter")
	return prompts.Format(template, map[string]string{
		"Template":       letterTemplate,
		"Company":        company,
		"Position":       position,
		"JobDescription": head(req.Job.Description, MaxJobDescriptionChars),
		"Resume":         head(req.Resume, MaxResumeChars),
	})
}

// head truncates s to at most n bytes without splitting a rune.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
