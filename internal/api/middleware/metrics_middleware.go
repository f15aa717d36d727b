package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/creatorflow/internal/metrics"
)

// Metrics counts requests by route pattern, so path ids do not explode the
// label space.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		metrics.ObserveHTTPRequest(c.Method(), c.Route().Path, status)
		return err
	}
}
