// Package dispatch selects a chat provider for a request, resolves the
// user's credentials, drives the provider adapter, and normalizes the
// result.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeforge/ai-gateway/core/settings"
	"github.com/codeforge/ai-gateway/providers/ai"
)

// requiresKey marks the providers that cannot be invoked without an API key.
var requiresKey = map[string]bool{
	ai.ProviderOpenAI:    true,
	ai.ProviderAnthropic: true,
	ai.ProviderGoogle:    true,
}

// ModelLister reports the models available in the local runtime. The
// dispatcher uses it to decide whether ollama is a viable fallback during
// auto-selection.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// Request is an inbound chat request after transport-level decoding.
type Request struct {
	Messages    []ai.Message
	Provider    string // empty means auto-select
	Model       string // empty means provider default
	Temperature float32
	MaxTokens   int
}

// Result is the normalized outcome of a successful dispatch.
type Result struct {
	Content   string `json:"content"`
	Provider  string `json:"provider"`
	Model     string `json:"model,omitempty"`
	Timestamp string `json:"timestamp"` // RFC 3339, UTC
}

// Dispatcher routes chat requests to providers.
type Dispatcher struct {
	settings *settings.Cache
	registry *ai.Registry
	local    ModelLister
}

// New returns a Dispatcher. local may be nil when no local runtime is
// configured; auto-selection then never falls back to ollama.
func New(settingsCache *settings.Cache, registry *ai.Registry, local ModelLister) *Dispatcher {
	return &Dispatcher{settings: settingsCache, registry: registry, local: local}
}

// Dispatch resolves the provider for req, invokes it, and returns the
// normalized result.
//
// When req.Provider is set it must name a registered chat provider; an
// unknown name fails with [ErrUnsupportedProvider] before any network call.
// When it is empty, providers are tried in [ai.ChatPriority] order: the
// API-key providers qualify when enabled in the user's settings, ollama when
// the local runtime reports at least one model.
func (d *Dispatcher) Dispatch(ctx context.Context, userID string, req Request) (*Result, error) {
	userSettings := d.settings.Get(ctx, userID)

	provider := req.Provider
	if provider == "" {
		selected, err := d.selectProvider(ctx, userSettings)
		if err != nil {
			return nil, err
		}
		provider = selected
	} else if _, ok := d.registry.Lookup(provider); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}

	apiKey := userSettings.For(provider).APIKey
	if requiresKey[provider] && apiKey == "" {
		return nil, &ConfigError{Provider: provider, Reason: "API key not configured, update your settings"}
	}

	factory, ok := d.registry.Lookup(provider)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
	adapter := factory()
	if apiKey != "" {
		adapter = adapter.WithAPIKey(apiKey)
	}

	response, err := adapter.SendMessage(ctx, ai.ChatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: provider, Err: err}
	}

	model := response.Model
	if model == "" {
		model = req.Model
	}

	slog.Debug("chat dispatched", "provider", provider, "model", model)

	return &Result{
		Content:   response.Content,
		Provider:  provider,
		Model:     model,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// selectProvider picks the first usable provider in priority order.
func (d *Dispatcher) selectProvider(ctx context.Context, userSettings settings.UserSettings) (string, error) {
	for _, name := range ai.ChatPriority {
		if name == ai.ProviderOllama {
			if d.localAvailable(ctx) {
				return name, nil
			}
			continue
		}
		if userSettings.For(name).Enabled {
			return name, nil
		}
	}
	return "", ErrNoProviderAvailable
}

func (d *Dispatcher) localAvailable(ctx context.Context) bool {
	if d.local == nil {
		return false
	}
	models, err := d.local.ListModels(ctx)
	if err != nil {
		return false
	}
	return len(models) > 0
}
