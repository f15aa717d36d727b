package handlers

import (
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/models"
	"github.com/maheshrc27/creatorflow/internal/service"
)

type PlatformHandler struct {
	ps   service.PlatformService
	meta service.MetaService
	yt   service.YoutubeService
	cfg  config.Config
}

func NewPlatformHandler(ps service.PlatformService, meta service.MetaService, yt service.YoutubeService, cfg config.Config) *PlatformHandler {
	return &PlatformHandler{
		ps:   ps,
		meta: meta,
		yt:   yt,
		cfg:  cfg,
	}
}

func (h *PlatformHandler) Accounts(c *fiber.Ctx) error {
	accounts, err := h.ps.List(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	if accounts == nil {
		accounts = []*models.SocialAccount{}
	}
	return c.JSON(fiber.Map{"accounts": accounts})
}

func (h *PlatformHandler) Connect(c *fiber.Ctx) error {
	oauthURL, err := h.ps.ConnectURL(c.Context(), c.Params("platform"), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"oauth_url": oauthURL})
}

func (h *PlatformHandler) MetaCallback(c *fiber.Ctx) error {
	if c.Query("code") == "" || c.Query("state") == "" {
		return h.accountsRedirect(c, "error", "oauth_failed")
	}

	platform, err := h.meta.Callback(c.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		slog.Info("meta connection failed", "error", err)
		return h.accountsRedirect(c, "error", "token_failed")
	}
	return h.accountsRedirect(c, "success", platform)
}

func (h *PlatformHandler) YoutubeCallback(c *fiber.Ctx) error {
	if c.Query("code") == "" || c.Query("state") == "" {
		return h.accountsRedirect(c, "error", "oauth_failed")
	}

	if err := h.yt.Callback(c.Context(), c.Query("code"), c.Query("state")); err != nil {
		slog.Info("youtube connection failed", "error", err)
		return h.accountsRedirect(c, "error", "token_failed")
	}
	return h.accountsRedirect(c, "success", "youtube")
}

func (h *PlatformHandler) accountsRedirect(c *fiber.Ctx, key, value string) error {
	return c.Redirect(h.cfg.FrontendURL+"/accounts?"+key+"="+url.QueryEscape(value), fiber.StatusTemporaryRedirect)
}

func (h *PlatformHandler) Disconnect(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorResponse(c, service.ErrAccountNotFound)
	}

	if err := h.ps.Disconnect(c.Context(), GetUserID(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account disconnected"})
}
