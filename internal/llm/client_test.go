package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		model    string
		expected Provider
	}{
		{"gpt-3.5-turbo", ProviderOpenAI},
		{"gpt-4o", ProviderOpenAI},
		{"gemini-2.5-flash", ProviderGemini},
		{"claude-3-5-sonnet-latest", ProviderAnthropic},
		{"some-unknown-model", ProviderOpenAI},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectProvider(tt.model), "model: %s", tt.model)
	}
}

func TestNewClient_RequiresKeyAndModel(t *testing.T) {
	_, err := NewClient(context.Background(), Options{Model: "gpt-4o"})
	assert.Error(t, err)

	_, err = NewClient(context.Background(), Options{APIKey: "sk-test"})
	assert.Error(t, err)
}

func openAIServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestOpenAIClient_GenerateText(t *testing.T) {
	server := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "  Dear Hiring Manager,\n..."}}]}`))
	})

	client, err := NewOpenAIClient(Options{APIKey: "sk-test", Model: "gpt-4o", BaseURL: server.URL}.withDefaults())
	require.NoError(t, err)

	text, err := client.GenerateText(context.Background(), "write a letter")
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager,\n...", text)
}

func TestOpenAIClient_AuthenticationError(t *testing.T) {
	server := openAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided"}}`))
	})

	client, err := NewOpenAIClient(Options{APIKey: "sk-bad", Model: "gpt-4o", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestOpenAIClient_RateLimitError(t *testing.T) {
	server := openAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "Rate limit reached"}}`))
	})

	client, err := NewOpenAIClient(Options{APIKey: "sk-test", Model: "gpt-4o", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)

	var rateErr *RateLimitError
	assert.ErrorAs(t, err, &rateErr)
}

func TestOpenAIClient_ServerError(t *testing.T) {
	server := openAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client, err := NewOpenAIClient(Options{APIKey: "sk-test", Model: "gpt-4o", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)

	var provErr *ProviderError
	assert.ErrorAs(t, err, &provErr)
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	server := openAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	client, err := NewOpenAIClient(Options{APIKey: "sk-test", Model: "gpt-4o", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)

	var provErr *ProviderError
	assert.ErrorAs(t, err, &provErr)
}

func TestNewClient_RetriesOnce(t *testing.T) {
	var calls atomic.Int32
	server := openAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "second try"}}]}`))
	})

	client, err := NewClient(context.Background(), Options{
		APIKey:     "sk-test",
		Model:      "gpt-4o",
		BaseURL:    server.URL,
		MaxRetries: 1,
	})
	require.NoError(t, err)

	text, err := client.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "second try", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewClient_NoRetryOnAuthFailure(t *testing.T) {
	var calls atomic.Int32
	server := openAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	client, err := NewClient(context.Background(), Options{
		APIKey:     "sk-bad",
		Model:      "gpt-4o",
		BaseURL:    server.URL,
		MaxRetries: 3,
	})
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)

	var authErr *AuthenticationError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewClient_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := openAIServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	client, err := NewClient(context.Background(), Options{
		APIKey:     "sk-test",
		Model:      "gpt-4o",
		BaseURL:    server.URL,
		MaxRetries: 1,
	})
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)

	var rateErr *RateLimitError
	assert.ErrorAs(t, err, &rateErr)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClassifyStatus(t *testing.T) {
	err := classifyStatus(ProviderOpenAI, http.StatusForbidden, errors.New("denied"))
	var authErr *AuthenticationError
	assert.ErrorAs(t, err, &authErr)

	err = classifyStatus(ProviderAnthropic, http.StatusTooManyRequests, errors.New("slow down"))
	var rateErr *RateLimitError
	assert.ErrorAs(t, err, &rateErr)

	err = classifyStatus(ProviderGemini, http.StatusBadGateway, errors.New("bad"))
	var provErr *ProviderError
	assert.ErrorAs(t, err, &provErr)
}
