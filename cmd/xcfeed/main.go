package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"xcfeed/internal/config"
	"xcfeed/internal/feed"
	"xcfeed/internal/pilotcache"
	"xcfeed/internal/publisher"
	"xcfeed/internal/service"
	"xcfeed/internal/source/xcontest"
	"xcfeed/internal/storage/postgres"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Setup logger
	logger := setupLogger("info")

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := xcontest.New(xcontest.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Year:    cfg.API.Year,
	}, logger)

	// Optional sinks stay nil interfaces when disabled.
	var store service.FlightStore
	if cfg.Database.Enabled() {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			return 1
		}
		defer db.Close()
		logger.Debug("connected to database")
		store = postgres.NewFlightStore(db)
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			return 1
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	feedService := service.NewFeedService(
		client,
		client,
		pilotcache.NewFileStore(cfg.CachePath),
		feed.NewRenderer(),
		store,
		pub,
		logger,
		service.FeedConfig{
			Key:   cfg.Key,
			URL:   cfg.URL,
			Users: cfg.Users,
		},
	)

	out, _, err := feedService.Run(ctx)
	if err != nil {
		logger.Error("failed to generate feed", "error", err)
		return 1
	}

	fmt.Println(out)

	return 0
}

// setupLogger writes to stderr; stdout carries only the feed.
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}
