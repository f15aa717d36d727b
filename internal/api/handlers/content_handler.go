package handlers

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/service"
	"github.com/maheshrc27/creatorflow/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{s: service}
}

func (h *ContentHandler) Generate(c *fiber.Ctx) error {
	calendar, err := h.s.Generate(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"calendar": calendar})
}

func (h *ContentHandler) Calendar(c *fiber.Ctx) error {
	calendar, err := h.s.Calendar(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	if calendar == nil {
		calendar = []*models.ContentItem{}
	}
	return c.JSON(fiber.Map{"calendar": calendar})
}

func (h *ContentHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorResponse(c, service.ErrContentNotFound)
	}

	var upd transfer.ContentUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.s.Update(c.Context(), GetUserID(c), id, &upd)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"content": item})
}

func (h *ContentHandler) Improve(c *fiber.Ctx) error {
	return h.itemAction(c, h.s.Improve)
}

func (h *ContentHandler) MakeEngaging(c *fiber.Ctx) error {
	return h.itemAction(c, h.s.MakeEngaging)
}

func (h *ContentHandler) Regenerate(c *fiber.Ctx) error {
	return h.itemAction(c, h.s.Regenerate)
}

func (h *ContentHandler) itemAction(c *fiber.Ctx, action func(context.Context, int64, int64) (*models.ContentItem, error)) error {
	id, ok := paramID(c)
	if !ok {
		return errorResponse(c, service.ErrContentNotFound)
	}

	item, err := action(c.Context(), GetUserID(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"content": item})
}

func (h *ContentHandler) ConfirmPlan(c *fiber.Ctx) error {
	suggestions, err := h.s.ConfirmPlan(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"confirmed":   true,
		"suggestions": suggestions,
	})
}

// RatePost accepts JSON, or a multipart form with an optional image file.
func (h *ContentHandler) RatePost(c *fiber.Ctx) error {
	var req transfer.RatePostRequest
	var image []byte

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := c.BodyParser(&req); err != nil {
			slog.Info(err.Error())
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to parse form",
			})
		}

		if fh, err := c.FormFile("image"); err == nil {
			if fh.Size > service.MaxImageSize {
				return errorResponse(c, service.ErrInvalidImage)
			}
			f, err := fh.Open()
			if err != nil {
				return errorResponse(c, err)
			}
			defer f.Close()
			if image, err = io.ReadAll(f); err != nil {
				return errorResponse(c, err)
			}
		}
	} else if len(c.Body()) > 0 {
		// Malformed JSON rates as an empty post.
		if err := c.BodyParser(&req); err != nil {
			slog.Info(err.Error())
			req = transfer.RatePostRequest{}
		}
	}

	resp, err := h.s.RatePost(c.Context(), GetUserID(c), &req, image)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
