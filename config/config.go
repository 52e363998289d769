// Package config loads gateway configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries every externally tunable setting of the gateway.
type Config struct {
	Port string `env:"PORT" envDefault:"8001"`

	// Collaborating services.
	SettingsServiceURL string `env:"SETTINGS_SERVICE_URL" envDefault:"http://database-service:3003"`
	ExecServiceURL     string `env:"EXEC_SERVICE_URL" envDefault:"http://terminal-service:3004"`
	OllamaHost         string `env:"OLLAMA_HOST" envDefault:"http://localhost:11434"`

	// RequestTimeout bounds every outbound call (settings fetch, provider
	// invocation, execution service). Nothing in the gateway blocks longer.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// SettingsCacheTTL expires cached user settings. Zero keeps entries for
	// the process lifetime.
	SettingsCacheTTL time.Duration `env:"SETTINGS_CACHE_TTL" envDefault:"0s"`
}

// Load reads environment variables, optionally from a .env file if present.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
