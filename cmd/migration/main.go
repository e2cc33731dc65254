package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/pixell-river/hr-directory/internal/adapter/repository"
	"github.com/pixell-river/hr-directory/internal/domain/branch"
	"github.com/pixell-river/hr-directory/internal/domain/employee"
	"github.com/pixell-river/hr-directory/internal/infrastructure"
	"github.com/pixell-river/hr-directory/internal/infrastructure/database"
	"github.com/pixell-river/hr-directory/internal/infrastructure/seed"
	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

func main() {
	withSeed := flag.Bool("seed", false, "load the sample branches and employees after migrating")
	timeout := flag.Duration("timeout", 60*time.Second, "overall deadline")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not loaded: %v", err)
	}

	if err := run(*withSeed, *timeout); err != nil {
		log.Fatalf("migration: %v", err)
	}
}

func run(withSeed bool, timeout time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zl, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Only the postgres store has a schema; the other drivers create
	// collections on first write.
	if cfg.DocstoreDriver == config.DriverPostgres {
		if err := database.RunMigrations(cfg.PostgresURL(), zl); err != nil {
			return err
		}
	} else {
		zl.Info("no migrations for driver", "driver", cfg.DocstoreDriver)
	}

	if !withSeed {
		return nil
	}
	if cfg.DocstoreDriver == config.DriverMemory {
		return fmt.Errorf("-seed has no effect on the memory driver; set SEED_SAMPLE_DATA=true on the api instead")
	}

	store, err := infrastructure.OpenStore(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer store.Close()

	branches := branch.NewService(repository.NewDocumentRepository[branch.Branch](store, branch.Collection))
	employees := employee.NewService(repository.NewDocumentRepository[employee.Employee](store, employee.Collection))

	_, err = seed.Run(ctx, branches, employees, zl)
	return err
}
