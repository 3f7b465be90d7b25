// labdex server: lab report ingestion, normalization and conversational
// querying over per-user Postgres data.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/semaphore"

	"github.com/labdex/labdex/pkg/agentic"
	"github.com/labdex/labdex/pkg/api"
	"github.com/labdex/labdex/pkg/config"
	"github.com/labdex/labdex/pkg/database"
	"github.com/labdex/labdex/pkg/gmail"
	"github.com/labdex/labdex/pkg/jobs"
	"github.com/labdex/labdex/pkg/llm"
	"github.com/labdex/labdex/pkg/mapping"
	"github.com/labdex/labdex/pkg/report"
	"github.com/labdex/labdex/pkg/schemactx"
	"github.com/labdex/labdex/pkg/sqlval"
	"github.com/labdex/labdex/pkg/units"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting labdex", "env", cfg.Env, "http_port", cfg.HTTPPort)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	db, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL, migrations applied")

	llmClient, err := llm.NewGeminiClient(ctx, cfg.LLM.APIKey)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	// Schema snapshot cache with NOTIFY-driven invalidation.
	schemaCache := schemactx.NewCache(db.DB(), cfg.Schema.Schemas, cfg.Schema.TTL)
	listener := schemactx.NewListener(dbConfig.DSN(), schemaCache)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start schema invalidation listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)

	// Report pipeline: units, mapping, extraction.
	unitStore := units.NewPGStore(db)
	normalizer := units.NewNormalizer(unitStore, llmClient, cfg.Units, cfg.LLM.ChatModel)
	batcher := units.NewBatcher(normalizer)
	analyteStore := mapping.NewPGStore(db)
	mapper := mapping.NewMapper(analyteStore, llmClient, cfg.Mapping, cfg.LLM.ChatModel)
	files := report.NewFileStore(cfg.Storage.BaseDir)
	processor := report.NewProcessor(db, llmClient, cfg.LLM.VisionModel, batcher, mapper, files)

	// Conversational SQL loop.
	validator := sqlval.New(sqlval.Limits{
		Explore:          cfg.Agentic.ExploreLimit,
		Table:            cfg.Agentic.TableLimit,
		Plot:             cfg.Agentic.PlotLimit,
		Data:             cfg.Agentic.TableLimit,
		MaxJoins:         sqlval.DefaultLimits().MaxJoins,
		MaxSubqueryDepth: sqlval.DefaultLimits().MaxSubqueryDepth,
		MaxAggregates:    sqlval.DefaultLimits().MaxAggregates,
	})
	agent := agentic.New(llmClient, cfg.LLM.ChatModel, db, validator, schemaCache,
		cfg.Agentic.SimilarityThreshold, cfg.Agentic.MaxIterations, cfg.Agentic.Timeout)

	// Gmail ingestion, all API calls under one shared limiter.
	gmailLimiter := semaphore.NewWeighted(cfg.Gmail.ConcurrencyLimit)
	tokens := gmail.NewTokenStore(db.AdminDB())
	connector := gmail.NewConnector(cfg.Gmail.ClientID, cfg.Gmail.ClientSecret,
		cfg.Gmail.RedirectURL, gmail.NewStateStore(), tokens)
	sweeper := gmail.NewSweeper(gmailLimiter, cfg.Gmail.MaxEmails,
		cfg.Gmail.RateLimitMaxRetries, cfg.Gmail.RateLimitBaseDelay)
	classifier := gmail.NewClassifier(llmClient, cfg.LLM.ChatModel, gmailLimiter,
		cfg.Gmail.MaxBodyChars, cfg.Gmail.RateLimitMaxRetries, cfg.Gmail.RateLimitBaseDelay)
	ingestor := gmail.NewIngestor(connector, gmail.NewPGProvenance(db.AdminDB()),
		processor, gmailLimiter, cfg.Gmail.RateLimitBaseDelay)

	// Job fabric and the periodic session sweep.
	registry := jobs.NewRegistry(cfg.Jobs.JobRetention)
	registry.Start()
	sweep := jobs.NewSweeper(db.Client, cfg.Jobs.SweepInterval)
	sweep.Start(ctx)

	server := api.NewServer(db, processor, agent, analyteStore,
		connector, sweeper, classifier, ingestor, registry)
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Jobs first so in-flight ingestions reach a terminal state, then the
	// HTTP server, then the listener via the deferred Stop.
	sweep.Stop()
	registry.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
