// Package middleware holds the fiber middleware shared by all routes.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/codeforge/ai-gateway/api/http/presenter"
)

// userIDHeader carries the caller identity on every authenticated route.
const userIDHeader = "x-user-id"

// RequestID tags every request with a fresh id, exposed both to handlers via
// locals and to clients via the X-Request-ID response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals("requestId", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

// Logger writes one structured access-log line per request.
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		requestID, _ := c.Locals("requestId").(string)
		slog.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
			"request_id", requestID,
		)
		return err
	}
}

// RequireUser rejects requests without an x-user-id header. The gateway does
// no authentication itself; it only needs a caller identity string to scope
// settings and git operations.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get(userIDHeader)
		if userID == "" {
			return presenter.Error(c, http.StatusUnauthorized, "user not authenticated")
		}
		c.Locals("userId", userID)
		return c.Next()
	}
}
