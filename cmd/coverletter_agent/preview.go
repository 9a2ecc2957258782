package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/agent"
	"github.com/jonathan/coverletter-agent/internal/observability"
)

var previewCmd = &cobra.Command{
	Use:   "preview <job-url>",
	Short: "Scrape a job posting and show what was extracted",
	Long:  "Fetch and scrape the job posting at the given URL, then print the extracted title, company, and description without generating a letter. No API key is required.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var previewBrowser bool

func init() {
	previewCmd.Flags().BoolVar(&previewBrowser, "browser", false, "Use a headless browser when the page loads content via JavaScript")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if previewBrowser {
		cfg.UseBrowser = true
	}

	a := agent.New(cfg)
	job, err := a.Preview(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintJobPosting(job)
	return nil
}
