package handlers

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/codeforge/ai-gateway/api/http/presenter"
)

// OllamaRuntime is the slice of the local runtime the handler needs.
type OllamaRuntime interface {
	ListModels(ctx context.Context) ([]string, error)
	Pull(ctx context.Context, modelName string) error
}

// OllamaHandler serves /ollama/models. A runtime factory is injected so that
// requests carrying a custom base_url get a client pointed at it, while
// requests without one use the configured default host.
type OllamaHandler struct {
	runtime func(baseURL string) OllamaRuntime
}

func NewOllamaHandler(runtime func(baseURL string) OllamaRuntime) *OllamaHandler {
	return &OllamaHandler{runtime: runtime}
}

type ollamaModelsRequest struct {
	BaseURL   string `json:"base_url"`
	ModelName string `json:"model_name"`
}

// Models handles POST /ollama/models: it lists the models available in the
// runtime and, when model_name names one that is missing, pulls it.
func (h *OllamaHandler) Models(c *fiber.Ctx) error {
	var body ollamaModelsRequest
	if err := c.BodyParser(&body); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}

	runtime := h.runtime(body.BaseURL)

	available, err := runtime.ListModels(c.Context())
	if err != nil {
		return ollamaError(c, err)
	}

	if body.ModelName != "" && !slices.Contains(available, body.ModelName) {
		if err := runtime.Pull(c.Context(), body.ModelName); err != nil {
			return ollamaError(c, err)
		}
		return presenter.JSON(c, http.StatusOK, fiber.Map{
			"status":  "success",
			"message": fmt.Sprintf("Model %s pulled successfully", body.ModelName),
		})
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"status":           "success",
		"available_models": available,
	})
}

func ollamaError(c *fiber.Ctx, err error) error {
	return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("Ollama configuration error: %v", err))
}
