package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tradeai/stockbot/internal/advisor"
	"github.com/tradeai/stockbot/internal/alert"
	"github.com/tradeai/stockbot/internal/bot"
	"github.com/tradeai/stockbot/internal/config"
	"github.com/tradeai/stockbot/internal/health"
	"github.com/tradeai/stockbot/internal/ledger"
	"github.com/tradeai/stockbot/internal/market"
	"github.com/tradeai/stockbot/internal/watchlist"
)

const version = "1.0.0"

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	configPath := flag.String("config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Stores.
	registry := ledger.NewRegistry()
	watchlists := watchlist.NewStore()
	alerts := alert.NewStore()

	// Market data: demo table behind a TTL quote cache.
	provider, err := market.NewCached(market.NewDemo(), cfg.QuoteTTL)
	if err != nil {
		logger.Error("failed to create market provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Bot.
	b, err := bot.New(cfg.TelegramToken, bot.Deps{
		Registry:  registry,
		Market:    provider,
		Watchlist: watchlists,
		Alerts:    alerts,
		Advisor:   advisor.New(),
		Logger:    logger,
		Version:   version,
	})
	if err != nil {
		logger.Error("failed to connect to telegram", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Alert monitor on a cron schedule; the bot delivers notifications.
	monitor := alert.NewMonitor(alerts, provider, b, logger)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(fmt.Sprintf("@every %s", cfg.AlertInterval), func() {
		monitor.Sweep(ctx)
	}); err != nil {
		logger.Error("failed to schedule alert monitor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	scheduler.Start()

	// Update polling.
	go func() {
		if err := b.Run(ctx); err != nil && err != context.Canceled {
			logger.Error("bot error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Health server.
	startedAt := time.Now().UTC()
	router := health.NewRouter(version, startedAt, func() health.Stats {
		return health.Stats{
			Users:          registry.Users(),
			Watchlists:     watchlists.Users(),
			ActiveAlerts:   alerts.ActiveCount(),
			HandledUpdates: b.Handled(),
		}
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("health server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("health server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown: stop cron, HTTP server, and bot polling.
	cronCtx := scheduler.Stop()
	<-cronCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("health server shutdown error", slog.String("error", err.Error()))
	}
	cancel()

	logger.Info("bot stopped")
}
