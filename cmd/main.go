package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"

	"filmreel/internal/config"
	"filmreel/internal/genres"
	"filmreel/internal/handler"
	"filmreel/internal/notify"
	"filmreel/internal/player"
	"filmreel/internal/service"
	"filmreel/internal/storage"
	"filmreel/internal/syncbus"
	"filmreel/internal/tmdb"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	bus := syncbus.New()
	origin := uuid.NewString()

	// Pick the persistence backend; memory is the degraded fallback.
	var backend storage.Backend
	var relay *syncbus.RedisRelay
	switch cfg.Storage.Backend {
	case "redis":
		rdb, err := storage.NewRedis(cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, falling back to memory storage", "error", err)
			backend = storage.NewMemoryBackend()
			break
		}
		backend = storage.NewRedisBackend(rdb, origin)
		relay = syncbus.NewRedisRelay(context.Background(), rdb, bus, origin)
	case "postgres":
		db, err := storage.NewPostgres(cfg.DB)
		if err != nil {
			slog.Warn("PostgreSQL unavailable, falling back to memory storage", "error", err)
			backend = storage.NewMemoryBackend()
			break
		}
		defer db.Close()
		backend = storage.NewPostgresBackend(db)
	default:
		backend = storage.NewMemoryBackend()
	}
	if relay != nil {
		defer relay.Close()
	}

	store := storage.New(backend, bus)
	client := tmdb.New(cfg.TMDB)
	gm := genres.NewMap()

	svc := service.New(client, store, gm)
	if err := svc.InitRows(context.Background()); err != nil {
		slog.Error("failed to seed home rows", "error", err)
		os.Exit(1)
	}

	h := handler.New(svc, notify.NewCenter(store), player.NewProgressSink(store))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "FilmReel",
		ServerHeader: "FilmReel",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// API routes
	api := app.Group("/api/v1")
	api.Get("/health", h.Health)

	api.Get("/rows", h.ListRows)
	api.Post("/rows/:name/more", h.RowMore)
	api.Get("/picks/daily", h.DailyPicks)
	api.Get("/discover/hidden-gems", h.HiddenGems)
	api.Get("/search", h.Search)

	api.Get("/movies/:id", h.MovieDetail)
	api.Get("/tv/:id", h.TVDetail)
	api.Get("/tv/:id/season/:season", h.SeasonDetail)

	api.Get("/mood/questions", h.MoodQuestions)
	api.Post("/mood/resolve", h.ResolveSurvey)
	api.Get("/mood/history", h.MoodHistory)

	api.Get("/profile", h.GetProfile)
	api.Put("/profile", h.SaveProfile)
	api.Delete("/profile", h.ResetProfile)

	api.Get("/watchlist", h.Watchlist)
	api.Post("/watchlist", h.AddToWatchlist)
	api.Delete("/watchlist/:type/:id", h.RemoveFromWatchlist)

	api.Get("/watched", h.Watched)
	api.Post("/watched/:type/:id", h.MarkWatched)
	api.Delete("/watched/:type/:id", h.UnmarkWatched)

	api.Get("/progress", h.Progress)
	api.Put("/progress/:type/:id", h.SaveProgress)
	api.Delete("/progress/:type/:id", h.RemoveProgress)

	api.Get("/notifications", h.Notifications)
	api.Post("/notifications/read-all", h.MarkNotificationsRead)
	api.Delete("/notifications", h.ClearNotifications)

	api.Get("/player/:type/:id/embed", h.EmbedURL)
	api.Post("/player/:type/:id/events", h.PlayerEvent)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down filmreel...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting filmreel", "addr", addr, "storage", cfg.Storage.Backend, "mock", client.Mock())
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
