// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewChars is how much of the job description a preview shows
	previewChars = 500
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobPosting outputs a human-readable summary of a scraped posting.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", orUnknown(job.Title)))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", orUnknown(job.Company)))
	if job.URL != "" {
		sb.WriteString(fmt.Sprintf("URL:      %s\n", job.URL))
	}
	sb.WriteString("\n")

	if job.Description != "" {
		sb.WriteString("Description:\n")
		desc := job.Description
		if len(desc) > previewChars {
			desc = desc[:previewChars] + "..."
		}
		for _, line := range wrapText(desc, boxWidth-6) {
			sb.WriteString("  " + line + "\n")
		}
	} else {
		sb.WriteString("Description: (none extracted)\n")
	}

	p.printBox("Job Posting", strings.TrimRight(sb.String(), "\n"))
}

// PrintGenerationSummary outputs where the letter landed and how big it is.
func (p *Printer) PrintGenerationSummary(result *types.GenerationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Output:   %s\n", result.OutputPath))
	sb.WriteString(fmt.Sprintf("Length:   %d characters, %d words",
		len(result.Text), len(strings.Fields(result.Text))))

	p.printBox("Cover Letter Generated", sb.String())
}

func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}
	return s
}

// wrapText splits s into lines no longer than width, breaking on spaces.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return lines
}
