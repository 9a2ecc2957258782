package resume

import (
	"os"
	"regexp"
	"strings"
)

var (
	codeFenceRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`([^`]*)`")
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	emphasisRe   = regexp.MustCompile(`(\*{1,3}|_{1,3})(\S(?:.*?\S)?)(\*{1,3}|_{1,3})`)
	bulletRe     = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	hrRe         = regexp.MustCompile(`(?m)^\s*([-*_]\s*){3,}$`)
)

// extractMarkdown strips markdown syntax, leaving readable plain text.
// Bullets become "- " so list structure survives for the prompt.
func extractMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}
	return StripMarkdown(string(data)), nil
}

// StripMarkdown removes markdown formatting from text.
func StripMarkdown(text string) string {
	text = codeFenceRe.ReplaceAllString(text, "")
	text = imageRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = hrRe.ReplaceAllString(text, "")
	text = headingRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "$2")
	text = bulletRe.ReplaceAllString(text, "- ")
	return strings.TrimSpace(text)
}
