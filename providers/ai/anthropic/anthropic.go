package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/codeforge/ai-gateway/internal/utils"
	"github.com/codeforge/ai-gateway/providers/ai"
)

const (
	// defaultBaseURL is the canonical base URL for Anthropic's Messages API.
	defaultBaseURL = "https://api.anthropic.com/v1"

	// messagesEndpoint is the path for the Messages API endpoint.
	messagesEndpoint = "/messages"

	// anthropicVersion is the required anthropic-version header value.
	// Anthropic uses this to version-lock response formats independently of the URL.
	anthropicVersion = "2023-06-01"

	// defaultModel is used when the caller does not name a model.
	defaultModel = "claude-3-sonnet-20240229"

	// defaultMaxTokens is applied when the caller leaves MaxTokens unset;
	// the Messages API rejects requests without max_tokens.
	defaultMaxTokens = 1000
)

// AnthropicProvider implements [ai.Provider] for Anthropic's Messages API.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns an [AnthropicProvider] initialized from environment variables.
// It reads ANTHROPIC_API_KEY for authentication and ANTHROPIC_API_BASE_URL
// for the endpoint base.
func New() *AnthropicProvider {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	baseURL := os.Getenv("ANTHROPIC_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Name implements [ai.Provider].
func (p *AnthropicProvider) Name() string { return ai.ProviderAnthropic }

// WithAPIKey sets the API key used for authenticating requests. It overrides
// the value read from ANTHROPIC_API_KEY.
func (p *AnthropicProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL overrides the API base URL. Use this when targeting a proxy or
// local testing endpoint.
func (p *AnthropicProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient replaces the default [http.Client] used for API calls.
func (p *AnthropicProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// buildHeaders constructs the HTTP headers required for every Anthropic
// request. x-api-key carries the credential (Anthropic does not use Bearer
// tokens) and anthropic-version pins the wire format.
func (p *AnthropicProvider) buildHeaders() []utils.HeaderOption {
	return []utils.HeaderOption{
		{Key: "x-api-key", Value: p.apiKey},
		{Key: "anthropic-version", Value: anthropicVersion},
	}
}

// SendMessage implements [ai.Provider] by sending a synchronous chat request
// to Anthropic's Messages API. It fails before any network call when the API
// key is unset.
func (p *AnthropicProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is not set")
	}

	// Pass empty apiKey so DoPostSync does not inject a Bearer token;
	// Anthropic authenticates via x-api-key instead.
	httpResponse, resp, err := utils.DoPostSync[anthropicResponse](
		ctx,
		p.client,
		p.baseURL+messagesEndpoint,
		"",
		requestToAnthropic(request),
		p.buildHeaders()...,
	)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from Anthropic API: %s", httpResponse.Status)
	}

	result := anthropicToGeneric(*resp)

	// Anthropic usually echoes the model name; fall back to the request model
	// so callers always have a non-empty Model field.
	if result.Model == "" {
		result.Model = request.Model
	}

	return result, nil
}
