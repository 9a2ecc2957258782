package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/output"
	"github.com/jonathan/coverletter-agent/internal/prompts"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the output directory and default letter template",
	Long:  "Prepare the working directory: create the output directory, write the default cover letter template if none exists, and report which environment variables still need to be set.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := output.NewWriter(cfg.OutputDir).EnsureDir(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Output directory ready: %s\n", cfg.OutputDir)

	if _, err := os.Stat(cfg.TemplatePath); os.IsNotExist(err) {
		if err := prompts.CreateDefaultLetterTemplate(cfg.TemplatePath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Created default template: %s\n", cfg.TemplatePath)
	} else {
		fmt.Fprintf(os.Stdout, "Template already exists: %s\n", cfg.TemplatePath)
	}

	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stdout, "Set API_KEY in your environment or .env file before generating.")
	}
	if os.Getenv("LLM_MODEL") == "" {
		fmt.Fprintf(os.Stdout, "LLM_MODEL not set; defaulting to %s.\n", cfg.Model)
	}

	fmt.Fprintln(os.Stdout, "Setup complete.")
	return nil
}
