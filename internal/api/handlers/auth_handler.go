package handlers

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/service"
	"github.com/maheshrc27/creatorflow/pkg/utils"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const stateCookie = "creatorflow_oauth_state"

type AuthHandler struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthHandler(cfg config.Config, service service.AuthService) *AuthHandler {
	return &AuthHandler{s: service, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	state, err := gonanoid.New()
	if err != nil {
		return errorResponse(c, err)
	}

	authURL, err := h.s.LoginURL(state)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(utils.StateDuration),
	})
	return c.Redirect(authURL, fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) LoginCallbackHandler(c *fiber.Ctx) error {
	code, state := c.Query("code"), c.Query("state")
	if code == "" || state == "" || state != c.Cookies(stateCookie) {
		return h.loginError(c, "auth_failed")
	}
	c.ClearCookie(stateCookie)

	userID, err := h.s.LoginCallback(c.Context(), code)
	if err != nil {
		slog.Info("google login failed", "error", err)
		return h.loginError(c, "token_exchange_failed")
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, fmt.Sprintf("%d", userID), h.cfg.JWTExpiry)
	if err != nil {
		return h.loginError(c, "auth_failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.JWTExpiry),
	})

	return c.Redirect(h.cfg.FrontendURL+"/auth/callback?token="+url.QueryEscape(token), fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) loginError(c *fiber.Ctx, reason string) error {
	return c.Redirect(h.cfg.FrontendURL+"/login?error="+reason, fiber.StatusTemporaryRedirect)
}
