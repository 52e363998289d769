package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codeforge/ai-gateway/api/http/handlers"
	"github.com/codeforge/ai-gateway/api/http/middleware"
)

// Register wires all HTTP routes onto the given Fiber app. Every route
// except /health requires a caller identity.
func Register(app *fiber.App, chat *handlers.ChatHandler, git *handlers.GitHandler, gh *handlers.GitHubHandler, ollama *handlers.OllamaHandler) {
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	app.Get("/health", handlers.Health)

	authed := app.Group("/", middleware.RequireUser())

	authed.Post("/chat", chat.Chat)
	authed.Get("/providers", chat.Providers)

	authed.Post("/git/execute", git.Execute)

	authed.Get("/github/user/:username", gh.User)
	authed.Get("/github/repos/:username", gh.Repos)
	authed.Get("/code-examples", gh.CodeExamples)

	authed.Post("/ollama/models", ollama.Models)
}
