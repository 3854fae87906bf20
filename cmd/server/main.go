package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"blogsmith/internal/ai"
	"blogsmith/internal/api"
	"blogsmith/internal/config"
	"blogsmith/internal/storage"
)

// shutdownTimeout is how long in-flight requests get to finish on SIGINT or
// SIGTERM. Generation calls can take most of the provider's 60s client
// timeout, so the drain window matches it.
const shutdownTimeout = 60 * time.Second

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data-dir", "./data", "path to data directory")
	flag.Parse()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Ensure data directory exists.
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	// Open database with WAL mode and pragmas.
	db, err := storage.OpenDatabase(filepath.Join(*dataDir, "blogsmith.db"))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run schema migrations.
	if err := storage.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := storage.NewStore(db)

	// Create the generation provider (nil if no API key -- handlers check
	// for this and answer with a configuration error).
	var generator ai.Generator
	if cfg.AI.APIKey != "" {
		generator, err = ai.NewProvider(ai.ProviderConfig{
			Provider: cfg.AI.Provider,
			APIKey:   cfg.AI.APIKey,
			Model:    cfg.AI.Model,
		})
		if err != nil {
			slog.Error("failed to create generation provider", "error", err)
			os.Exit(1)
		}
		slog.Info("generation provider configured", "provider", cfg.AI.Provider, "model", cfg.AI.Model)
	} else {
		slog.Warn("no API key configured, article generation will be unavailable")
	}

	router := api.NewRouter(store, generator)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start the HTTP server and wait for a shutdown signal.
	go func() {
		slog.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
