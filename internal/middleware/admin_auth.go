package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// RequireAdminKey gates catalog mutations behind the X-Admin-Key header.
// With no ADMIN_API_KEY configured the gate is closed entirely.
func RequireAdminKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminKey := os.Getenv("ADMIN_API_KEY")
		if adminKey == "" || c.Get("X-Admin-Key") != adminKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}
		return c.Next()
	}
}
