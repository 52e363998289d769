package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/codeforge/ai-gateway/api/http/presenter"
)

// Health handles GET /health, the only unauthenticated route.
func Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"status":  "healthy",
		"service": "ai-gateway",
	})
}
