package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "pawfuel/internal/adapter/http"
	"pawfuel/internal/adapter/memory"
	"pawfuel/internal/adapter/openai"
	"pawfuel/internal/adapter/usecase"
	"pawfuel/internal/config"
)

// main is the entry point of the pawfuel marketing-automation service. It
// loads configuration, initializes the in-memory session stores and the
// generation adapters, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout))

	// Session-scoped stores, seeded with the dashboard's demo data.
	journal := memory.NewJournal()
	journal.Seed()
	rules := memory.NewRules()
	rules.Seed()

	// Generation adapters and pipeline usecases.
	texts := openai.NewClient(cfg.OpenAI)
	images := openai.NewStubImageGenerator(cfg.Generator.ImageDelay)

	enricher := usecase.NewEnrichmentService(texts, logger, cfg.Generator.RecordDelay)
	campaigns := usecase.NewCampaignService(texts, images, logger, cfg.Generator.PairDelay)
	runner := usecase.NewRunner(campaigns, journal, logger)
	social := usecase.NewSocialService(texts, rand.NewSource(time.Now().UnixNano()))

	handler := httpadapter.NewHandler(enricher, runner, social, journal, rules, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	// The shutdown deadline must come from a fresh context: the signal has
	// already landed, so any signal-bound context is canceled by now and
	// would abort the drain immediately.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
