// Package settings holds per-user provider configuration and the
// read-through cache that fronts the remote settings service.
package settings

import "github.com/codeforge/ai-gateway/providers/ai"

// ProviderConfig is one provider's credential record for one user.
type ProviderConfig struct {
	APIKey  string `json:"apiKey"`
	Enabled bool   `json:"enabled"`
}

// UserSettings maps every known provider to its configuration. The zero
// value is fully populated: every provider present, disabled, empty key —
// the shape callers receive when the settings service has nothing on record.
type UserSettings struct {
	OpenAI    ProviderConfig `json:"openai"`
	Anthropic ProviderConfig `json:"anthropic"`
	Google    ProviderConfig `json:"google"`
	Ollama    ProviderConfig `json:"ollama"`
	GitHub    ProviderConfig `json:"github"`
}

// Defaults returns all-disabled settings with empty keys.
func Defaults() UserSettings {
	return UserSettings{}
}

// For returns the configuration entry for the named provider. Unknown names
// yield a disabled zero entry, so callers never have to special-case them.
func (s UserSettings) For(provider string) ProviderConfig {
	switch provider {
	case ai.ProviderOpenAI:
		return s.OpenAI
	case ai.ProviderAnthropic:
		return s.Anthropic
	case ai.ProviderGoogle:
		return s.Google
	case ai.ProviderOllama:
		return s.Ollama
	case ai.ProviderGitHub:
		return s.GitHub
	default:
		return ProviderConfig{}
	}
}
