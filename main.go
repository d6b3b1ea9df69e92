package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/api"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/config"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/core"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/inventory"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/jobs"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/logging"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize the core application components
	app, err := core.New(cfg, migrationsFS, Version, logger)
	if err != nil {
		logger.Fatal("Fatal error during application setup", zap.Error(err))
	}
	defer app.Close()

	scheduler := jobs.StartJobs(app)
	if scheduler != nil {
		defer scheduler.Stop()
	}

	// Inventory exports dropped into the import directory replace the stored inventory.
	if dir := cfg.Inventory.ImportDir; dir != "" {
		watcher := inventory.NewWatcher(dir, store.New(app.DB()), func(path string, count int) {
			if err := app.JobManager().RunJob(jobs.SoftwareCheckJobID, app); err != nil {
				logger.Warn("Could not start check after import", zap.String("path", path), zap.Error(err))
			}
		}, logger)
		if err := watcher.Start(); err != nil {
			logger.Warn("Inventory watcher not started", zap.String("dir", dir), zap.Error(err))
		} else {
			defer watcher.Stop()
		}
	}

	// Setup the API server
	server := api.NewServer(app)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown ---
	go func() {
		logger.Info("Starting web server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	// Let a running check observe the cancellation before the database closes.
	app.JobManager().Shutdown()
	if err := app.JobManager().Wait(ctx); err != nil {
		logger.Warn("Job did not stop in time", zap.Error(err))
	}

	logger.Info("Server exiting.")
}
