// Package main contains the entrypoint for the Arogya-Sakhi Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/ai"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/bot"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/bot/handlers"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/bot/tasks"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/cache"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/dialogue"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/httpapi"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/logger"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/recommend"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components, blocks until shutdown and returns the
// process exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)

	store := database.NewStore(db, log)
	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Error("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
			return 1
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("Error closing Redis client", "error", err)
			}
		}()
		store = cache.NewSessionStore(store, rdb, cfg.Redis.TTL, log)
	}

	aiClient, err := ai.NewClient(ctx, cfg.AI, log)
	if err != nil {
		log.Error("Failed to initialize AI client", "provider", cfg.AI.Provider, "error", err)
		return 1
	}
	recommender := recommend.NewEngine(aiClient, store, ai.ParamsFromConfig(cfg.AI), cfg.AI.Timeout, log)

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(func(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
			log.DebugContext(ctx, "Ignoring non-text update", "update_id", update.ID)
		}),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	sender := telegram.NewSender(tg, log)
	engine := dialogue.NewEngine(store, sender, recommender, dialogue.Config{HistoryLimit: cfg.Dialogue.HistoryLimit}, log)

	hDeps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Dialogue: engine,
		Sender:   sender,
		Stats:    store,
	}
	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllHandlers(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	tDeps := tasks.TaskDeps{
		Logger:   log,
		Store:    store,
		Dialogue: engine,
		Config:   cfg,
	}
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	var server *http.Server
	if cfg.HTTP.Enabled {
		server = &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           httpapi.NewRouter(store, log),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	app := bot.NewBot(log, tg, sched, server)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.", "pending_profile_edits", engine.PendingEdits())
	time.Sleep(time.Second)
	return 0
}
