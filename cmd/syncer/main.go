package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hxfsina/migu-video/internal/cache"
	"github.com/hxfsina/migu-video/internal/config"
	"github.com/hxfsina/migu-video/internal/metrics"
	"github.com/hxfsina/migu-video/internal/publisher"
	"github.com/hxfsina/migu-video/internal/scheduler"
	"github.com/hxfsina/migu-video/internal/service"
	"github.com/hxfsina/migu-video/internal/source/migu"
	"github.com/hxfsina/migu-video/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Optional event publisher
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	// Optional fingerprint cache
	var fpCache service.FingerprintCache
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewFingerprint(cache.Config{
			URL: cfg.Redis.URL,
			TTL: cfg.Redis.TTL,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		fpCache = redisCache
		logger.Info("fingerprint cache enabled", "ttl", cfg.Redis.TTL)
	}

	// Initialize stores
	videoStore := postgres.NewVideoStore(db)
	episodeStore := postgres.NewEpisodeStore(db, logger)
	searchStore := postgres.NewSearchIndexStore(db)
	statusStore := postgres.NewSyncStatusStore(db)

	// Initialize migu source
	miguSource := migu.New(migu.Config{
		BaseURL:        cfg.API.BaseURL,
		DetailURL:      cfg.API.DetailURL,
		PageSize:       cfg.API.PageSize,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	m := metrics.New(prometheus.DefaultRegisterer)
	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, logger)
	}

	syncService := service.NewSyncService(
		miguSource,
		videoStore,
		episodeStore,
		searchStore,
		statusStore,
		fpCache,
		pub,
		m,
		logger,
		cfg.Sync,
		cfg.JobList(),
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting catalog syncer",
		"jobs", len(cfg.Jobs),
		"interval", cfg.Sync.Interval,
		"page_size", cfg.API.PageSize,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listener started", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics listener failed", "error", err)
	}
}

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
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
