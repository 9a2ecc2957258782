package llm

import (
	"fmt"
	"net/http"
)

// AuthenticationError indicates the provider rejected the API key.
type AuthenticationError struct {
	Provider Provider
	Cause    error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s authentication failed: check your API key: %v", e.Provider, e.Cause)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

// RateLimitError indicates the provider throttled the request.
type RateLimitError struct {
	Provider Provider
	Cause    error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limit exceeded: %v", e.Provider, e.Cause)
}

func (e *RateLimitError) Unwrap() error {
	return e.Cause
}

// ProviderError covers all other provider failures: server errors,
// malformed or empty responses, blocked generations.
type ProviderError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// classifyStatus maps an HTTP status code from a provider into the
// error taxonomy.
func classifyStatus(provider Provider, status int, cause error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthenticationError{Provider: provider, Cause: cause}
	case status == http.StatusTooManyRequests:
		return &RateLimitError{Provider: provider, Cause: cause}
	default:
		return &ProviderError{
			Provider: provider,
			Message:  fmt.Sprintf("HTTP status %d", status),
			Cause:    cause,
		}
	}
}
