package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/creatorflow/internal/service"
)

func GetUserID(c *fiber.Ctx) int64 {
	s, _ := c.Locals("user_id").(string)
	userID, _ := strconv.ParseInt(s, 10, 64)
	return userID
}

// errorResponse maps service errors onto status codes. Unknown errors are
// logged and hidden from the client.
func errorResponse(c *fiber.Ctx, err error) error {
	status, msg := fiber.StatusInternalServerError, "something went wrong"

	switch {
	case errors.Is(err, service.ErrContentNotFound):
		status, msg = fiber.StatusNotFound, "Content not found"
	case errors.Is(err, service.ErrAccountNotFound):
		status, msg = fiber.StatusNotFound, "Account not found"
	case errors.Is(err, service.ErrUserNotFound):
		status, msg = fiber.StatusUnauthorized, "User not found"
	case errors.Is(err, service.ErrProfileRequired):
		status, msg = fiber.StatusBadRequest, "Please complete your brand profile first"
	case errors.Is(err, service.ErrNoContent):
		status, msg = fiber.StatusBadRequest, "No content generated yet"
	case errors.Is(err, service.ErrInvalidProfile), errors.Is(err, service.ErrInvalidImage):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrUnsupportedPlatform):
		status, msg = fiber.StatusBadRequest, "Unsupported platform"
	case errors.Is(err, service.ErrOAuthConfig):
		status, msg = fiber.StatusServiceUnavailable, "Platform connection is not configured"
	default:
		slog.Error("request failed", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}
