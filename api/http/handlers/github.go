package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/codeforge/ai-gateway/api/http/presenter"
	"github.com/codeforge/ai-gateway/providers/github"
)

// GitHubHandler serves the GitHub integration routes. The user's configured
// GitHub token, when present, is injected per request; anonymous access is
// allowed but rate-limited upstream.
type GitHubHandler struct {
	gh       *github.Client
	settings SettingsSource
}

func NewGitHubHandler(gh *github.Client, settingsSource SettingsSource) *GitHubHandler {
	return &GitHubHandler{gh: gh, settings: settingsSource}
}

// client returns the GitHub client to use for the calling user.
func (h *GitHubHandler) client(c *fiber.Ctx) *github.Client {
	userID, _ := c.Locals("userId").(string)
	if token := h.settings.Get(c.Context(), userID).GitHub.APIKey; token != "" {
		return h.gh.WithToken(token)
	}
	return h.gh
}

// User handles GET /github/user/:username.
func (h *GitHubHandler) User(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := h.client(c).GetUser(c.Context(), username)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, fmt.Sprintf("GitHub user %s not found", username))
	}
	return presenter.JSON(c, http.StatusOK, user)
}

// Repos handles GET /github/repos/:username. Listing failures degrade to an
// empty repository list rather than an error.
func (h *GitHubHandler) Repos(c *fiber.Ctx) error {
	username := c.Params("username")

	repos, err := h.client(c).ListRepos(c.Context(), username)
	if err != nil {
		slog.Warn("github repo listing failed", "username", username, "error", err)
		repos = []github.Repo{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"repositories": repos})
}

// CodeExamples handles GET /code-examples?query=...: repository search with
// README snippets. An empty query or a search failure yields an empty list.
func (h *GitHubHandler) CodeExamples(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return presenter.JSON(c, http.StatusOK, fiber.Map{"examples": []github.CodeExample{}})
	}

	examples, err := h.client(c).SearchCodeExamples(c.Context(), query)
	if err != nil {
		slog.Warn("code example search failed", "query", query, "error", err)
		examples = []github.CodeExample{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"examples": examples})
}
