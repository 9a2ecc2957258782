package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeClient implements Client for Anthropic's Messages API.
type ClaudeClient struct {
	client anthropic.Client
	opts   Options
}

// NewClaudeClient creates an Anthropic client.
func NewClaudeClient(opts Options) (*ClaudeClient, error) {
	clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &ClaudeClient{
		client: anthropic.NewClient(clientOpts...),
		opts:   opts,
	}, nil
}

// GenerateText sends a single-turn message and returns the text blocks.
func (c *ClaudeClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.opts.Model),
		MaxTokens:   int64(c.opts.MaxTokens),
		Temperature: anthropic.Float(float64(c.opts.Temperature)),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
		}},
	})
	if err != nil {
		return "", c.classify(err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &ProviderError{Provider: ProviderAnthropic, Message: "no text blocks in response"}
	}

	return normalizeText(sb.String()), nil
}

// Provider returns ProviderAnthropic.
func (c *ClaudeClient) Provider() Provider {
	return ProviderAnthropic
}

// Close is a no-op; the SDK client holds no persistent resources.
func (c *ClaudeClient) Close() error {
	return nil
}

// classify maps Anthropic API errors into the error taxonomy.
func (c *ClaudeClient) classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return classifyStatus(ProviderAnthropic, apiErr.StatusCode, err)
	}
	return &ProviderError{Provider: ProviderAnthropic, Message: "generation failed", Cause: err}
}
