package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"

	apihttp "github.com/codeforge/ai-gateway/api/http"
	"github.com/codeforge/ai-gateway/api/http/handlers"
	"github.com/codeforge/ai-gateway/config"
	"github.com/codeforge/ai-gateway/core/dispatch"
	"github.com/codeforge/ai-gateway/core/gitops"
	"github.com/codeforge/ai-gateway/core/settings"
	"github.com/codeforge/ai-gateway/providers/ai"
	"github.com/codeforge/ai-gateway/providers/ai/anthropic"
	"github.com/codeforge/ai-gateway/providers/ai/gemini"
	"github.com/codeforge/ai-gateway/providers/ai/ollama"
	"github.com/codeforge/ai-gateway/providers/ai/openai"
	"github.com/codeforge/ai-gateway/providers/github"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// One client, one timeout, shared by every outbound call.
	client := &http.Client{Timeout: cfg.RequestTimeout}

	settingsCache := settings.NewCache(cfg.SettingsServiceURL, client, cfg.SettingsCacheTTL)

	registry := ai.NewRegistry()
	registry.Register(ai.ProviderOpenAI, func() ai.Provider {
		return openai.New().WithHttpClient(client)
	})
	registry.Register(ai.ProviderAnthropic, func() ai.Provider {
		return anthropic.New().WithHttpClient(client)
	})
	registry.Register(ai.ProviderGoogle, func() ai.Provider {
		return gemini.New().WithHttpClient(client)
	})
	registry.Register(ai.ProviderOllama, func() ai.Provider {
		return ollama.New().WithBaseURL(cfg.OllamaHost).WithHttpClient(client)
	})

	// The dispatcher and the /providers listing share one local runtime
	// handle for model discovery.
	local := ollama.New()
	local.WithBaseURL(cfg.OllamaHost)
	local.WithHttpClient(client)

	dispatcher := dispatch.New(settingsCache, registry, local)
	executor := gitops.NewExecutor(cfg.ExecServiceURL, client)
	gh := github.New().WithHttpClient(client)

	chatHandler := handlers.NewChatHandler(dispatcher, settingsCache, local)
	gitHandler := handlers.NewGitHandler(executor)
	githubHandler := handlers.NewGitHubHandler(gh, settingsCache)
	ollamaHandler := handlers.NewOllamaHandler(func(baseURL string) handlers.OllamaRuntime {
		runtime := ollama.New()
		if baseURL == "" {
			baseURL = cfg.OllamaHost
		}
		runtime.WithBaseURL(baseURL)
		runtime.WithHttpClient(client)
		return runtime
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	apihttp.Register(app, chatHandler, gitHandler, githubHandler, ollamaHandler)

	slog.Info("ai gateway listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
