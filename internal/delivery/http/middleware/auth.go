package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zone-enrichment/internal/pkg/errors"
	"github.com/zone-enrichment/internal/pkg/utils"
)

const apiKeyHeader = "X-API-Key"

// APIKey guards a route group with a static key check. An empty
// configured key disables the check, which keeps local development
// unauthenticated.
func APIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		if c.Get(apiKeyHeader) != key {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		return c.Next()
	}
}
