package ai

import (
	"context"
	"net/http"
)

// Provider is the core interface that every chat provider implementation must
// satisfy. It covers the full lifecycle of a single request: authentication,
// endpoint configuration, message dispatch, and response interpretation.
type Provider interface {
	// Name returns the canonical provider name ("openai", "anthropic", ...).
	Name() string

	// SendMessage sends a chat request to the provider and returns the
	// completed response. Returns an error if required credentials are
	// missing, the provider call fails, the context is cancelled, or the
	// response cannot be decoded. Implementations must not perform a
	// network call when required credentials are absent.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// WithAPIKey sets the API key used for authenticating requests.
	// Providers without credentials (local runtimes) ignore it.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
