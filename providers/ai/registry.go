package ai

import "sort"

// Canonical provider names. These match both the remote settings service's
// JSON keys and the "provider" field accepted on inbound chat requests.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
	ProviderOllama    = "ollama"
	ProviderGitHub    = "github" // source-hosting integration, not chat-capable
)

// ChatPriority is the fixed order in which providers are considered when a
// request does not name one explicitly.
var ChatPriority = []string{ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderOllama}

// Factory builds a fresh Provider instance. A new instance is created per
// dispatch so per-user credentials never leak between requests.
type Factory func() Provider

// Registry maps provider names to factories. Registering a new provider is
// the only step needed to make it dispatchable; selection and credential
// logic never enumerate concrete types.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates name with a factory, replacing any previous entry.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Lookup returns the factory for name, or false when the provider is unknown.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered provider names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
