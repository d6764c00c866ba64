// Package main is the entry point for the Tredeco API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zapponejosh/tredeco-api/internal/api"
	"github.com/zapponejosh/tredeco-api/internal/config"
	"github.com/zapponejosh/tredeco-api/internal/database"
	"github.com/zapponejosh/tredeco-api/internal/logger"
	"github.com/zapponejosh/tredeco-api/internal/places"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	log.Info("starting tredeco API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("tredeco API stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	presets, err := loadPresets(cfg)
	if err != nil {
		return err
	}

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	handlers := api.NewHandlers(db, cfg, presets, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("tredeco API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// loadPresets returns the city presets and checks that the default city
// is one of them.
func loadPresets(cfg *config.Config) (places.Presets, error) {
	presets := places.Default()
	if cfg.CitiesFile != "" {
		var err error
		if presets, err = places.LoadFile(cfg.CitiesFile); err != nil {
			return nil, err
		}
	}

	if _, err := presets.Lookup(cfg.DefaultCity); err != nil {
		return nil, fmt.Errorf("DEFAULT_CITY: %w", err)
	}
	return presets, nil
}
