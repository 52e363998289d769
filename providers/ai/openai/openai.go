package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/codeforge/ai-gateway/internal/utils"
	"github.com/codeforge/ai-gateway/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"

	// defaultModel is used when the caller does not name a model.
	defaultModel = "gpt-3.5-turbo"
)

// OpenAIProvider implements the [ai.Provider] interface for the OpenAI API.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns an [OpenAIProvider] initialized from environment variables.
// It reads OPENAI_API_KEY for authentication and OPENAI_API_BASE_URL for the
// endpoint base (defaulting to https://api.openai.com/v1 when unset).
func New() *OpenAIProvider {
	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Name implements [ai.Provider].
func (p *OpenAIProvider) Name() string { return ai.ProviderOpenAI }

// WithAPIKey sets the API key for the provider.
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements [ai.Provider]. It fails before any network call when
// the API key is unset.
func (p *OpenAIProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openai API key is not set")
	}

	httpResponse, resp, err := utils.DoPostSync[chatCompletionsResponse](
		ctx,
		p.client,
		p.baseURL+chatCompletionsEndpoint,
		p.apiKey,
		requestToOpenAI(request),
	)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from OpenAI API: %s", httpResponse.Status)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenAI response")
	}

	return responseToGeneric(*resp), nil
}
