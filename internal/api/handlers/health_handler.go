package handlers

import "github.com/gofiber/fiber/v2"

func Health(aiEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"service":    "Creator Flow API",
			"ai_enabled": aiEnabled,
		})
	}
}
