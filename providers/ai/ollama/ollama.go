package ollama

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/codeforge/ai-gateway/internal/utils"
	"github.com/codeforge/ai-gateway/providers/ai"
)

const (
	defaultBaseURL = "http://localhost:11434"

	chatEndpoint = "/api/chat"
	tagsEndpoint = "/api/tags"
	pullEndpoint = "/api/pull"

	// defaultModel is used when the caller does not name a model.
	defaultModel = "llama2"
)

// OllamaProvider implements the [ai.Provider] interface for a local
// Ollama-compatible runtime.
type OllamaProvider struct {
	baseURL string
	client  *http.Client
}

// New returns an [OllamaProvider] initialized from environment variables.
// It reads OLLAMA_HOST for the runtime address, defaulting to
// http://localhost:11434 when unset.
func New() *OllamaProvider {
	baseURL := os.Getenv("OLLAMA_HOST")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OllamaProvider{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Name implements [ai.Provider].
func (p *OllamaProvider) Name() string { return ai.ProviderOllama }

// WithAPIKey is a no-op: the local runtime has no credentials.
func (p *OllamaProvider) WithAPIKey(string) ai.Provider { return p }

// WithBaseURL sets the runtime address.
func (p *OllamaProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *OllamaProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements [ai.Provider] by calling the runtime's /api/chat
// endpoint with streaming disabled.
func (p *OllamaProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	model := request.Model
	if model == "" {
		model = defaultModel
	}

	messages := make([]chatMessage, 0, len(request.Messages))
	for _, msg := range request.Messages {
		messages = append(messages, chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	req := chatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
	}
	if request.Temperature > 0 || request.MaxTokens > 0 {
		req.Options = &chatOptions{
			Temperature: request.Temperature,
			NumPredict:  request.MaxTokens,
		}
	}

	httpResponse, resp, err := utils.DoPostSync[chatResponse](ctx, p.client, p.baseURL+chatEndpoint, "", req)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from Ollama: %s", httpResponse.Status)
	}

	result := &ai.ChatResponse{
		Model:        resp.Model,
		Content:      resp.Message.Content,
		FinishReason: mapDoneReason(resp),
	}
	if resp.PromptEvalCount > 0 || resp.EvalCount > 0 {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
		}
	}
	if result.Model == "" {
		result.Model = model
	}

	return result, nil
}

// ListModels returns the names of the models available in the local runtime.
// An unreachable runtime is an error; callers treating availability as a
// soft signal (provider auto-selection) map the error to "no models".
func (p *OllamaProvider) ListModels(ctx context.Context) ([]string, error) {
	_, resp, err := utils.DoGetSync[tagsResponse](ctx, p.client, p.baseURL+tagsEndpoint, "")
	if err != nil {
		return nil, fmt.Errorf("listing ollama models: %w", err)
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Pull downloads a model into the local runtime. The call is synchronous:
// it returns once the runtime reports the pull finished.
func (p *OllamaProvider) Pull(ctx context.Context, modelName string) error {
	_, _, err := utils.DoPostSync[pullResponse](ctx, p.client, p.baseURL+pullEndpoint, "", pullRequest{Name: modelName, Stream: false})
	if err != nil {
		return fmt.Errorf("pulling ollama model %q: %w", modelName, err)
	}
	return nil
}

func mapDoneReason(resp *chatResponse) string {
	switch resp.DoneReason {
	case "length":
		return "length"
	case "":
		if resp.Done {
			return "stop"
		}
		return ""
	default:
		return "stop"
	}
}
