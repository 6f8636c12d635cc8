package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Shreyashh2909/Pocket-Smart-AI/advisor"
	"github.com/Shreyashh2909/Pocket-Smart-AI/cliparse"
	"github.com/Shreyashh2909/Pocket-Smart-AI/db"
	"github.com/Shreyashh2909/Pocket-Smart-AI/logging"
	"github.com/Shreyashh2909/Pocket-Smart-AI/metrics"
	"github.com/Shreyashh2909/Pocket-Smart-AI/middleware"
	"github.com/Shreyashh2909/Pocket-Smart-AI/router"
)

func main() {
	// Load .env before reading any configuration
	if err := cliparse.LoadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		slog.Error("Error loading env file", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	m := metrics.New()

	adv := advisor.New(advisor.Config{
		APIKey:      cfg.GroqAPIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		MaxAttempts: cfg.MaxAttempts,
		RetryDelay:  cfg.RetryDelay,
	}, m)

	// Analysis history is optional
	var store *db.Store
	if cfg.HistoryEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		store, err = db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		cancel()
		if err != nil {
			slog.Error("history database unavailable", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	// Create router
	mux := router.NewRouter(adv, store, cfg, m)

	// Create server; writes must outlive a full analysis including retries
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "model", cfg.Model, "history", cfg.HistoryEnabled())
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
