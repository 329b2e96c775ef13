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

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"campaign_pulse/internal/analytics"
	"campaign_pulse/internal/classifier"
	"campaign_pulse/internal/config"
	"campaign_pulse/internal/ingest"
	"campaign_pulse/internal/llm"
	"campaign_pulse/internal/publisher"
	"campaign_pulse/internal/scheduler"
	"campaign_pulse/internal/server"
	"campaign_pulse/internal/service"
	"campaign_pulse/internal/source/apify"
	"campaign_pulse/internal/storage/postgres"
	"campaign_pulse/internal/suggest"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

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

	// Initialize stores
	candidateStore := postgres.NewCandidateStore(db)
	postStore := postgres.NewPostStore(db)
	commentStore := postgres.NewCommentStore(db)
	sentimentStore := postgres.NewSentimentStore(db)
	themeStore := postgres.NewThemeStore(db)
	runStore := postgres.NewRunStore(db)
	insightStore := postgres.NewInsightStore(db)
	analyticsStore := postgres.NewAnalyticsStore(db)
	txManager := postgres.NewTransactionManager(db)

	startupCtx := context.Background()

	for _, candidate := range cfg.Candidates {
		if _, err := candidateStore.Ensure(startupCtx, candidate.Username, candidate.DisplayName); err != nil {
			logger.Error("failed to register candidate", "username", candidate.Username, "error", err)
			os.Exit(1)
		}
	}
	logger.Info("candidates registered", "count", len(cfg.Candidates))

	// Initialize providers
	apifyClient := apify.New(apify.Config{
		BaseURL:        cfg.Scraper.BaseURL,
		Token:          cfg.Scraper.Token,
		PostActor:      cfg.Scraper.PostActor,
		CommentActor:   cfg.Scraper.CommentActor,
		PostLimit:      cfg.Scraper.PostLimit,
		CommentLimit:   cfg.Scraper.CommentLimit,
		Timeout:        cfg.Scraper.Timeout,
		MaxAttempts:    cfg.Scraper.Retry.MaxAttempts,
		InitialBackoff: cfg.Scraper.Retry.InitialBackoff,
		MaxBackoff:     cfg.Scraper.Retry.MaxBackoff,
	}, logger)

	llmClient := llm.New(llm.Config{
		BaseURL:  cfg.LLM.BaseURL,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		Language: cfg.LLM.Language,
		Timeout:  cfg.LLM.Timeout,
	}, logger)

	// Assemble the pipeline
	ingestService := ingest.New(apifyClient, postStore, commentStore, logger)
	sentimentClassifier := classifier.NewSentimentClassifier(classifier.NewVaderScorer(), llmClient, sentimentStore, logger)
	themeClassifier := classifier.NewThemeClassifier(llmClient, themeStore, txManager, logger)

	pipeline := service.NewPipeline(
		candidateStore,
		ingestService,
		postStore,
		sentimentClassifier,
		themeClassifier,
		runStore,
		rabbitMQ,
		logger,
		cfg.Pipeline,
	)

	if err := pipeline.ReconcileStale(startupCtx); err != nil {
		logger.Error("failed to reconcile stale runs", "error", err)
		os.Exit(1)
	}

	analyticsService := analytics.NewService(analyticsStore, runStore)
	suggestService := suggest.New(analyticsService, llmClient, insightStore, runStore, logger)

	sched := scheduler.NewScheduler(pipeline, cfg.Pipeline.Interval, cfg.Pipeline.RunTimeout, logger)

	srv := server.New(pipeline, analyticsService, suggestService, db, sched, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Router(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting campaign monitor",
		"candidates", len(cfg.Candidates),
		"interval", cfg.Pipeline.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
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
