package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/resume"
)

// resolveResume turns the --resume/--resume-text flag pair into plain
// resume text. With neither flag set it falls back to prompting on stdin.
func resolveResume(path, text string) (string, error) {
	if path != "" && text != "" {
		return "", fmt.Errorf("--resume and --resume-text are mutually exclusive; provide only one")
	}
	if path != "" {
		return resume.ExtractFile(path)
	}
	if text != "" {
		return strings.TrimSpace(text), nil
	}
	return promptResume(os.Stdin, os.Stderr)
}

// promptResume reads resume text interactively. Input ends at EOF or at
// the first empty line after some content has been entered.
func promptResume(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "No resume provided. Paste your resume text below.")
	fmt.Fprintln(out, "Finish with an empty line (or Ctrl-D):")

	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" && len(lines) > 0 {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read resume from stdin: %w", err)
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return "", fmt.Errorf("no resume text entered")
	}
	return text, nil
}
