package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/agent"
	"github.com/jonathan/coverletter-agent/internal/observability"
)

var urlCmd = &cobra.Command{
	Use:   "url <job-url>",
	Short: "Generate a cover letter for a job posting URL",
	Long:  "Scrape the job posting at the given URL and generate a cover letter tailored to it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runURL,
}

var (
	urlResumePath string
	urlResumeText string
	urlOutput     string
	urlBrowser    bool
)

func init() {
	urlCmd.Flags().StringVarP(&urlResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt, .md)")
	urlCmd.Flags().StringVar(&urlResumeText, "resume-text", "", "Resume as raw text")
	urlCmd.Flags().StringVarP(&urlOutput, "output", "o", "", "Base name for the output file")
	urlCmd.Flags().BoolVar(&urlBrowser, "browser", false, "Use a headless browser when the page loads content via JavaScript")

	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if urlBrowser {
		cfg.UseBrowser = true
	}

	resumeText, err := resolveResume(urlResumePath, urlResumeText)
	if err != nil {
		return err
	}

	a := agent.New(cfg)
	result, job, err := a.GenerateFromURL(cmd.Context(), args[0], resumeText, urlOutput)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintJobPosting(job)
	}
	printer.PrintGenerationSummary(result)
	fmt.Fprintf(os.Stdout, "Cover letter saved to %s\n", result.OutputPath)

	return nil
}
