// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values applied when neither the config file nor the
// environment provides a setting.
const (
	DefaultModel        = "gpt-3.5-turbo"
	DefaultOutputDir    = "output"
	DefaultTemplatePath = "templates/cover_letter_template.txt"
	DefaultTimeout      = 10 * time.Second
	DefaultMaxRetries   = 1
)

// Environment variable names read by FromEnv.
const (
	EnvAPIKey       = "API_KEY"
	EnvModel        = "LLM_MODEL"
	EnvOutputDir    = "COVER_LETTER_OUTPUT_DIR"
	EnvTemplatePath = "COVER_LETTER_TEMPLATE"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment variables.
type Config struct {
	// LLM
	APIKey     string `json:"api_key,omitempty"`     // Provider API key
	Model      string `json:"model,omitempty"`       // Model identifier; selects the provider
	MaxRetries *int   `json:"max_retries,omitempty"` // Immediate retries on a failed LLM call; 0 disables, nil means default

	// Paths
	OutputDir    string `json:"output_dir,omitempty"`    // Directory for generated letters
	TemplatePath string `json:"template_path,omitempty"` // Cover letter template file

	// Scraping
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // HTTP fetch timeout
	UseBrowser     bool `json:"use_browser,omitempty"`     // Headless browser fallback for SPA sites

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
// Callers typically merge this over a file config via MergeWithDefaults.
func FromEnv() Config {
	return Config{
		APIKey:       os.Getenv(EnvAPIKey),
		Model:        os.Getenv(EnvModel),
		OutputDir:    os.Getenv(EnvOutputDir),
		TemplatePath: os.Getenv(EnvTemplatePath),
	}
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Model:          DefaultModel,
		OutputDir:      DefaultOutputDir,
		TemplatePath:   DefaultTemplatePath,
		TimeoutSeconds: int(DefaultTimeout / time.Second),
	}
}

// Load assembles the effective configuration: env values over file
// values over built-in defaults. The config file path may be empty.
func Load(path string) (*Config, error) {
	base := Default()
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		base = fileCfg.MergeWithDefaults(base)
	}
	env := FromEnv()
	merged := env.MergeWithDefaults(base)
	return &merged, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Retries returns the effective retry count. A nil MaxRetries means
// the default; an explicit 0 disables retries.
func (c *Config) Retries() int {
	if c.MaxRetries == nil {
		return DefaultMaxRetries
	}
	return *c.MaxRetries
}

// Validate checks that the configuration has valid values.
// The API key is checked separately by RequireAPIKey since commands
// like setup and preview run without one.
func (c *Config) Validate() error {
	if c.Retries() < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config error: 'output_dir' must not be empty")
	}
	return nil
}

// RequireAPIKey validates that an API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("no API key configured: set the %s environment variable", EnvAPIKey)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer env and file configs over built-in values.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.TemplatePath == "" {
		result.TemplatePath = defaults.TemplatePath
	}

	// Pointer so an explicit 0 in the file is not mistaken for unset
	if result.MaxRetries == nil {
		result.MaxRetries = defaults.MaxRetries
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
