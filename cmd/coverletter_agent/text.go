package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/agent"
	"github.com/jonathan/coverletter-agent/internal/observability"
)

var textCmd = &cobra.Command{
	Use:   "text <job-description-file>",
	Short: "Generate a cover letter from a job description text file",
	Long:  "Read a job description from a text file and generate a cover letter for it. Use --company and --position to fill in details the text does not carry.",
	Args:  cobra.ExactArgs(1),
	RunE:  runText,
}

var (
	textResumePath string
	textResumeText string
	textCompany    string
	textPosition   string
	textOutput     string
)

func init() {
	textCmd.Flags().StringVarP(&textResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt, .md)")
	textCmd.Flags().StringVar(&textResumeText, "resume-text", "", "Resume as raw text")
	textCmd.Flags().StringVarP(&textCompany, "company", "c", "", "Company name for the letter")
	textCmd.Flags().StringVarP(&textPosition, "position", "p", "", "Position title for the letter")
	textCmd.Flags().StringVarP(&textOutput, "output", "o", "", "Base name for the output file")

	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}
	description := strings.TrimSpace(string(data))
	if description == "" {
		return fmt.Errorf("job description file %s is empty", args[0])
	}

	resumeText, err := resolveResume(textResumePath, textResumeText)
	if err != nil {
		return err
	}

	a := agent.New(cfg)
	result, err := a.GenerateFromText(cmd.Context(), description, resumeText, textCompany, textPosition, textOutput)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGenerationSummary(result)
	fmt.Fprintf(os.Stdout, "Cover letter saved to %s\n", result.OutputPath)

	return nil
}
