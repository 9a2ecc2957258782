package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// Generation defaults, tuned for cover letter length output.
const (
	DefaultMaxTokens   = 3000
	DefaultTemperature = 0.7
)

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateText sends a prompt and returns the generated text.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// Provider returns the backing provider.
	Provider() Provider
	// Close releases any resources held by the client.
	Close() error
}

// Options configures a client.
type Options struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	MaxRetries  int    // immediate retries after a failed call
	BaseURL     string // override the provider endpoint; used in tests
	Verbose     bool
}

func (o Options) withDefaults() Options {
	if o.MaxTokens == 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Temperature == 0 {
		o.Temperature = DefaultTemperature
	}
	return o
}

// NewClient creates a client for the provider implied by opts.Model.
func NewClient(ctx context.Context, opts Options) (Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	opts = opts.withDefaults()

	var (
		inner Client
		err   error
	)
	switch DetectProvider(opts.Model) {
	case ProviderGemini:
		inner, err = NewGeminiClient(ctx, opts)
	case ProviderAnthropic:
		inner, err = NewClaudeClient(opts)
	default:
		inner, err = NewOpenAIClient(opts)
	}
	if err != nil {
		return nil, err
	}

	if opts.MaxRetries <= 0 {
		return inner, nil
	}
	return &retryClient{Client: inner, retries: opts.MaxRetries, verbose: opts.Verbose}, nil
}

// retryClient retries a failed generation immediately, at most retries
// times. Authentication failures are never retried; a bad key will not
// improve on a second attempt.
type retryClient struct {
	Client
	retries int
	verbose bool
}

func (c *retryClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		text, err := c.Client.GenerateText(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		var authErr *AuthenticationError
		if errors.As(err, &authErr) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", lastErr
		}
		if c.verbose && attempt < c.retries {
			log.Printf("[VERBOSE] Generation attempt %d failed: %v, retrying", attempt+1, err)
		}
	}
	return "", lastErr
}

// normalizeText trims generated output the way every provider path needs.
func normalizeText(s string) string {
	return strings.TrimSpace(s)
}
