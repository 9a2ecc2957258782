// Package llm provides a normalized client over multiple LLM providers.
// The provider is inferred from the configured model name, so switching
// providers is a matter of setting LLM_MODEL.
package llm

import "strings"

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderOpenAI is the OpenAI chat completions API
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderAnthropic is the Anthropic/Claude provider
	ProviderAnthropic Provider = "anthropic"
)

// DetectProvider infers the provider from a model identifier.
// Unknown models default to OpenAI.
func DetectProvider(model string) Provider {
	m := strings.ToLower(model)
	switch {
	case strings.Contains(m, "gpt") || strings.Contains(m, "openai"):
		return ProviderOpenAI
	case strings.Contains(m, "gemini") || strings.Contains(m, "google"):
		return ProviderGemini
	case strings.Contains(m, "claude") || strings.Contains(m, "anthropic"):
		return ProviderAnthropic
	default:
		return ProviderOpenAI
	}
}
