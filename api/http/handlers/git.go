package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/codeforge/ai-gateway/api/http/presenter"
	"github.com/codeforge/ai-gateway/core/gitops"
	"github.com/codeforge/ai-gateway/core/intent"
	"github.com/codeforge/ai-gateway/providers/ai"
)

// GitExecutor runs extracted git operations against the execution service.
type GitExecutor interface {
	ExecuteAll(ctx context.Context, userID string, ops []intent.Request) []gitops.Result
}

// GitHandler serves /git/execute.
type GitHandler struct {
	executor GitExecutor
}

func NewGitHandler(executor GitExecutor) *GitHandler {
	return &GitHandler{executor: executor}
}

// Execute handles POST /git/execute: it takes the last user-role message of
// the conversation, extracts git operations from it, runs them in order, and
// returns the per-operation report. Extraction finding nothing is a valid
// empty result, not an error.
func (h *GitHandler) Execute(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var body ChatRequest
	if err := c.BodyParser(&body); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}

	userMessage, ok := lastUserMessage(body.Messages)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "no user message found")
	}

	ops := intent.Extract(userMessage)
	if len(ops) == 0 {
		return presenter.JSON(c, http.StatusOK, fiber.Map{
			"operations": []gitops.Result{},
			"message":    "no git operations detected",
		})
	}

	results := h.executor.ExecuteAll(c.Context(), userID, ops)

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"operations": len(ops),
		"results":    results,
	})
}

func lastUserMessage(messages []ChatMessage) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == string(ai.RoleUser) {
			return messages[i].Content, true
		}
	}
	return "", false
}
