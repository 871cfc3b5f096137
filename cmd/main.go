package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pgsummarizer/internal/config"
	"pgsummarizer/internal/logging"
	"pgsummarizer/internal/monitor"
	"pgsummarizer/internal/server"
	"pgsummarizer/internal/settings"
	"pgsummarizer/internal/summarizer"
	"pgsummarizer/internal/webpage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config",
			"error", err)

		os.Exit(1)
	}

	log := logging.NewLogger(cfg.LogFormat, cfg.LogLevel)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize settings stores",
			"error", err)

		return
	}
	defer closeStore()

	sum := summarizer.NewClient(store)
	fetcher := webpage.NewFetcher(log)

	mon := monitor.New(ctx, summarizer.CompletionsURL, log)
	if err = mon.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start monitor",
			"error", err,
			"spec", monitor.ProbeSpec)

		return
	}
	defer mon.Stop()
	log.InfoContext(ctx, "Monitor is started",
		"spec", monitor.ProbeSpec)

	srv := server.New(sum, fetcher, mon, log)
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		if serveErr := httpServer.ListenAndServe(); serveErr != nil &&
			!errors.Is(serveErr, http.ErrServerClosed) {
			log.ErrorContext(ctx, "HTTP server failed",
				"error", serveErr,
				"addr", cfg.Addr)
			cancel()
		}
	}()
	log.InfoContext(ctx, "HTTP server is started",
		"addr", cfg.Addr)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Failed to shut down HTTP server",
			"error", err)
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}

// buildStore assembles the settings chain: process environment first, then
// the optional settings file, then the optional settings database.
func buildStore(
	ctx context.Context,
	cfg config.Config,
	log *slog.Logger,
) (settings.Store, func(), error) {
	stores := settings.Chain{settings.EnvStore{}}
	cleanup := func() {}

	if cfg.SettingsFile != "" {
		fileStore, err := settings.NewFileStore(cfg.SettingsFile)
		if err != nil {
			return nil, nil, err
		}

		stores = append(stores, fileStore)
		log.InfoContext(ctx, "File settings store is initialized",
			"path", cfg.SettingsFile)
	}

	if cfg.DBPath != "" {
		dbStore, err := settings.NewSQLiteStore(ctx, cfg.DBPath, log)
		if err != nil {
			return nil, nil, err
		}

		stores = append(stores, dbStore)
		cleanup = func() {
			if closeErr := dbStore.Close(); closeErr != nil {
				log.ErrorContext(ctx, "Failed to close settings db",
					"error", closeErr,
					"dbPath", cfg.DBPath)
			}
		}
		log.InfoContext(ctx, "DB settings store is initialized",
			"dbPath", cfg.DBPath)
	}

	return stores, cleanup, nil
}
