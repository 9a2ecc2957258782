// Package main provides the entry point for the cover letter generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "coverletter_agent",
	Short: "AI Cover Letter Generator",
	Long:  "Generates a tailored cover letter from a job posting (URL or text file) and your resume, using a configurable LLM provider.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress information")
}

// loadConfig resolves the effective configuration for a command run.
// Environment variables override the config file; flags override both.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
