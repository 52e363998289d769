package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/codeforge/ai-gateway/api/http/presenter"
	"github.com/codeforge/ai-gateway/core/dispatch"
	"github.com/codeforge/ai-gateway/core/settings"
	"github.com/codeforge/ai-gateway/providers/ai"
)

// Request-level defaults applied when the client omits tuning fields.
const (
	defaultTemperature float32 = 0.7
	defaultMaxTokens           = 1000
)

// ChatService dispatches a chat request to a provider.
type ChatService interface {
	Dispatch(ctx context.Context, userID string, req dispatch.Request) (*dispatch.Result, error)
}

// SettingsSource supplies per-user provider settings. Never fails.
type SettingsSource interface {
	Get(ctx context.Context, userID string) settings.UserSettings
}

// ModelLister reports locally available models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// ChatHandler serves /chat and /providers.
type ChatHandler struct {
	svc      ChatService
	settings SettingsSource
	local    ModelLister
}

func NewChatHandler(svc ChatService, settingsSource SettingsSource, local ModelLister) *ChatHandler {
	return &ChatHandler{svc: svc, settings: settingsSource, local: local}
}

// ChatMessage is one turn of the inbound conversation payload.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the /chat and /git/execute request body. Temperature and
// MaxTokens are pointers so that "absent" and "zero" stay distinguishable.
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Provider    string        `json:"provider,omitempty"`
	Model       string        `json:"model,omitempty"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

// Chat handles POST /chat: it validates the payload, dispatches to the
// selected or auto-selected provider, and returns the normalized result.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var body ChatRequest
	if err := c.BodyParser(&body); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	if len(body.Messages) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "messages must not be empty")
	}

	temperature := defaultTemperature
	if body.Temperature != nil {
		temperature = *body.Temperature
	}
	if temperature < 0 || temperature > 2 {
		return presenter.Error(c, http.StatusBadRequest, "temperature must be in [0, 2]")
	}

	maxTokens := defaultMaxTokens
	if body.MaxTokens != nil {
		maxTokens = *body.MaxTokens
	}
	if maxTokens <= 0 {
		return presenter.Error(c, http.StatusBadRequest, "max_tokens must be positive")
	}

	messages := make([]ai.Message, 0, len(body.Messages))
	for _, m := range body.Messages {
		messages = append(messages, ai.Message{Role: ai.MessageRole(m.Role), Content: m.Content})
	}

	result, err := h.svc.Dispatch(c.Context(), userID, dispatch.Request{
		Messages:    messages,
		Provider:    body.Provider,
		Model:       body.Model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return chatError(c, err)
	}

	return presenter.JSON(c, http.StatusOK, result)
}

// chatError maps the dispatch error taxonomy to HTTP statuses: configuration
// problems are the client's to fix (400), provider invocation failures are
// service errors (500).
func chatError(c *fiber.Ctx, err error) error {
	var cfgErr *dispatch.ConfigError
	switch {
	case errors.Is(err, dispatch.ErrNoProviderAvailable),
		errors.Is(err, dispatch.ErrUnsupportedProvider),
		errors.As(err, &cfgErr):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("AI service error: %v", err))
	}
}

// ProviderStatus describes one provider in the /providers listing.
type ProviderStatus struct {
	Name         string   `json:"name"`
	Enabled      bool     `json:"enabled"`
	Models       []string `json:"models"`
	Type         string   `json:"type"`
	RequiresAuth bool     `json:"requires_auth,omitempty"`
}

// Providers handles GET /providers: the enabled/available status of every
// provider for the calling user, including a live local-model listing.
func (h *ChatHandler) Providers(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	userSettings := h.settings.Get(c.Context(), userID)

	localModels, err := h.local.ListModels(c.Context())
	if err != nil {
		localModels = nil // unreachable runtime means no local models
	}

	providers := map[string]ProviderStatus{
		ai.ProviderOpenAI: {
			Name:    "OpenAI",
			Enabled: userSettings.OpenAI.Enabled,
			Models:  []string{"gpt-4", "gpt-3.5-turbo"},
			Type:    "api",
		},
		ai.ProviderAnthropic: {
			Name:    "Anthropic",
			Enabled: userSettings.Anthropic.Enabled,
			Models:  []string{"claude-3-opus-20240229", "claude-3-sonnet-20240229"},
			Type:    "api",
		},
		ai.ProviderGoogle: {
			Name:    "Google AI",
			Enabled: userSettings.Google.Enabled,
			Models:  []string{"gemini-pro", "gemini-pro-vision"},
			Type:    "api",
		},
		ai.ProviderOllama: {
			Name:    "Ollama",
			Enabled: len(localModels) > 0,
			Models:  localModels,
			Type:    "local",
		},
		ai.ProviderGitHub: {
			Name:         "GitHub Integration",
			Enabled:      true,
			Models:       []string{},
			Type:         "integration",
			RequiresAuth: true,
		},
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{"providers": providers})
}
