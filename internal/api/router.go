package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/api/handlers"
	"github.com/maheshrc27/creatorflow/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Profile  *handlers.ProfileHandler
	Content  *handlers.ContentHandler
	Platform *handlers.PlatformHandler
}

// Register mounts every route on app. Metrics are served from gatherer when
// it is not nil.
func Register(app *fiber.App, cfg config.Config, h Handlers, aiEnabled bool, gatherer prometheus.Gatherer) {
	app.Use(middleware.Metrics())

	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Get("/health", handlers.Health(aiEnabled))

	api.Get("/auth/google", h.Auth.Login)
	api.Get("/auth/google/callback", h.Auth.LoginCallbackHandler)
	api.Get("/social/callback/meta", h.Platform.MetaCallback)
	api.Get("/social/callback/youtube", h.Platform.YoutubeCallback)

	authed := middleware.NewAuthMiddleware(cfg).AuthMiddleware()

	api.Get("/auth/me", authed, h.User.GetUserInfo)

	profile := api.Group("/profile", authed)
	profile.Get("", h.Profile.Get)
	profile.Post("", h.Profile.Save)

	content := api.Group("/content", authed)
	content.Post("/generate", h.Content.Generate)
	content.Get("/calendar", h.Content.Calendar)
	content.Post("/confirm-plan", h.Content.ConfirmPlan)
	content.Post("/rate-post", h.Content.RatePost)
	content.Put("/:id", h.Content.Update)
	content.Post("/:id/improve", h.Content.Improve)
	content.Post("/:id/engaging", h.Content.MakeEngaging)
	content.Post("/:id/regenerate", h.Content.Regenerate)

	social := api.Group("/social", authed)
	social.Get("/accounts", h.Platform.Accounts)
	social.Get("/connect/:platform", h.Platform.Connect)
	social.Delete("/disconnect/:id", h.Platform.Disconnect)
}
