// Package infrastructure opens the document store selected by configuration.
package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/pixell-river/hr-directory/internal/infrastructure/cache"
	"github.com/pixell-river/hr-directory/internal/infrastructure/database"
	"github.com/pixell-river/hr-directory/internal/infrastructure/firestore"
	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/docstore"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

const pingTimeout = 5 * time.Second

// OpenStore connects to the store named by cfg.DocstoreDriver and checks it
// answers. The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Logger) (docstore.Store, error) {
	var (
		store docstore.Store
		err   error
	)

	switch cfg.DocstoreDriver {
	case config.DriverMemory:
		store = docstore.NewMemory()
	case config.DriverPostgres:
		pool, perr := database.NewPool(ctx, cfg)
		if perr != nil {
			return nil, perr
		}
		store = database.NewPostgresStore(pool)
	case config.DriverRedis:
		store = cache.NewRedisStore(cache.NewRedisClient(cfg.Redis))
	case config.DriverFirestore:
		client, ferr := firestore.NewClient(ctx, cfg.Firestore)
		if ferr != nil {
			return nil, ferr
		}
		store = firestore.NewStore(client)
	default:
		return nil, fmt.Errorf("%w: %q", docstore.ErrUnknownDriver, cfg.DocstoreDriver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ping %s store: %w", cfg.DocstoreDriver, err)
	}

	log.Info("document store ready", "driver", cfg.DocstoreDriver)
	return store, nil
}
