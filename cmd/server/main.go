package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/creatorflow/configs"
	"github.com/maheshrc27/creatorflow/internal/api"
	"github.com/maheshrc27/creatorflow/internal/api/handlers"
	"github.com/maheshrc27/creatorflow/internal/generator"
	job "github.com/maheshrc27/creatorflow/internal/jobs"
	"github.com/maheshrc27/creatorflow/internal/metrics"
	"github.com/maheshrc27/creatorflow/internal/queue"
	"github.com/maheshrc27/creatorflow/internal/repository"
	"github.com/maheshrc27/creatorflow/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg := config.LoadConfig()
	if cfg.SecretKey == "" {
		fatal("SECRET_KEY is required")
	}

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		fatal("failed to open database", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.PingContext(ctx); err != nil {
		fatal("database is unreachable", "error", err)
	}
	if err := repository.Migrate(ctx, db); err != nil {
		fatal("failed to migrate database", "error", err)
	}
	cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.MustRegister(registry)

	gen := newGenerator(cfg)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	contentRepo := repository.NewContentRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo, profileRepo)
	profileService := service.NewProfileService(profileRepo)
	mediaService := service.NewMediaService(cfg.R2)
	contentService := service.NewContentService(gen, contentRepo, profileRepo, mediaService)
	platformService := service.NewPlatformService(*cfg, socialAccountRepo)
	metaService := service.NewMetaService(*cfg, socialAccountRepo)
	youtubeService := service.NewYoutubeService(*cfg, socialAccountRepo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		BodyLimit:    service.MaxImageSize + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("unhandled error", "path", c.Path(), "error", err)
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	api.Register(app, *cfg, api.Handlers{
		Auth:     handlers.NewAuthHandler(*cfg, authService),
		User:     handlers.NewUserHandler(userService),
		Profile:  handlers.NewProfileHandler(profileService),
		Content:  handlers.NewContentHandler(contentService),
		Platform: handlers.NewPlatformHandler(platformService, metaService, youtubeService, *cfg),
	}, gen.AIEnabled(), registry)

	stopBackground := startBackground(cfg, socialAccountRepo, youtubeService)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			fatal("failed to start server", "error", err)
		}
	}()
	slog.Info("server is running", "port", cfg.Port, "ai_enabled", gen.AIEnabled())

	gracefulShutdown(app, db, stopBackground)
}

// newGenerator wires the configured AI provider in front of the template
// fallback. Without a usable provider only the fallback runs.
func newGenerator(cfg *config.Config) *generator.Generator {
	fallback := generator.NewFallbackStrategy(generator.NewFallback(nil))
	opts := []generator.Option{generator.WithTimeout(cfg.AI.Timeout)}

	if !cfg.AIEnabled() {
		slog.Info("AI generation disabled, using templates", "provider", cfg.AI.Provider)
		return generator.New(fallback, opts...)
	}

	var client generator.TextGenerator
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		gemini, err := generator.NewGeminiClient(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			slog.Warn("gemini client unavailable, using templates", "error", err)
			return generator.New(fallback, opts...)
		}
		client = gemini
	case config.ProviderOpenAI:
		openai, err := generator.NewOpenAIClient(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
		if err != nil {
			slog.Warn("openai client unavailable, using templates", "error", err)
			return generator.New(fallback, opts...)
		}
		client = openai
	}

	opts = append(opts, generator.WithPrimary(generator.NewAIStrategy(client)))
	return generator.New(fallback, opts...)
}

// startBackground runs the token refresh cron and its asynq worker. Both
// need Redis and are skipped without it.
func startBackground(cfg *config.Config, sa repository.SocialAccountRepository, yt service.YoutubeService) func() {
	if cfg.RedisURI == "" {
		slog.Info("REDIS_URI not set, background token refresh disabled")
		return func() {}
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)

	refreshTokenJob := job.NewTokenRefreshJob(sa, client)
	c := cron.New()
	if err := c.AddFunc("@every 10m", refreshTokenJob.RefreshTokens); err != nil {
		fatal("failed to schedule token refresh", "error", err)
	}
	c.Start()

	server := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: 10,
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskTypeTokenRefresh, queue.NewQueue(yt).HandleTokenRefreshTask)

	slog.Info("starting the asynq server")
	if err := server.Start(mux); err != nil {
		fatal("could not start asynq server", "error", err)
	}

	return func() {
		c.Stop()
		server.Shutdown()
		if err := client.Close(); err != nil {
			slog.Warn("failed to close asynq client", "error", err)
		}
	}
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
		return
	}
	slog.Info("database connection closed")
}

func gracefulShutdown(app *fiber.App, db *sql.DB, stopBackground func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	slog.Info("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
	stopBackground()

	closeDB(db)
	slog.Info("server shutdown complete")
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
