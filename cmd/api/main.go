package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pixell-river/hr-directory/internal/infrastructure"
	"github.com/pixell-river/hr-directory/internal/infrastructure/seed"
	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

const basePath = "/api/v1"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not loaded: %v", err)
	}

	if err := run(); err != nil {
		log.Fatalf("api: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zl, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := infrastructure.OpenStore(ctx, cfg, zl)
	if err != nil {
		return err
	}

	app, err := NewApp(cfg, store, zl)
	if err != nil {
		_ = store.Close()
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			zl.Error("close document store", "error", err)
		}
	}()

	if cfg.SeedSampleData && !cfg.SeedOnStart() {
		zl.Warn("SEED_SAMPLE_DATA ignored for persistent driver, use cmd/migration -seed", "driver", cfg.DocstoreDriver)
	}
	if cfg.SeedOnStart() {
		if _, err := seed.Run(ctx, app.branchService, app.employeeService, zl); err != nil {
			return err
		}
	}

	app.SetupRoutes(basePath)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.GetRouter(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		zl.Info("server listening", "addr", server.Addr, "env", cfg.AppEnv, "driver", cfg.DocstoreDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
