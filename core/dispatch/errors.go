package dispatch

import (
	"errors"
	"fmt"
)

// ErrNoProviderAvailable is returned by auto-selection when no provider is
// enabled in the user's settings and the local runtime has no models.
var ErrNoProviderAvailable = errors.New("no AI provider enabled; configure your API keys in settings")

// ErrUnsupportedProvider is returned when a request names a provider the
// dispatcher cannot route chat to. No network call is made.
var ErrUnsupportedProvider = errors.New("unsupported provider")

// ConfigError reports missing or invalid credentials for a provider.
type ConfigError struct {
	Provider string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

// ProviderError wraps a failure from a provider invocation: bad key rejected
// upstream, network failure, or a malformed response.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
