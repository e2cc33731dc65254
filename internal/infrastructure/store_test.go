package infrastructure_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixell-river/hr-directory/internal/infrastructure"
	"github.com/pixell-river/hr-directory/internal/infrastructure/cache"
	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/docstore"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

func TestOpenStoreMemory(t *testing.T) {
	store, err := infrastructure.OpenStore(context.Background(), &config.Config{DocstoreDriver: config.DriverMemory}, logger.NewNop())
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &docstore.Memory{}, store)
}

func TestOpenStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		DocstoreDriver: config.DriverRedis,
		Redis:          config.RedisConfig{Addr: mr.Addr()},
	}

	store, err := infrastructure.OpenStore(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &cache.RedisStore{}, store)
}

func TestOpenStoreRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.SetError("LOADING server is loading")
	cfg := &config.Config{
		DocstoreDriver: config.DriverRedis,
		Redis:          config.RedisConfig{Addr: mr.Addr()},
	}

	_, err := infrastructure.OpenStore(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	_, err := infrastructure.OpenStore(context.Background(), &config.Config{DocstoreDriver: "cassandra"}, logger.NewNop())
	assert.ErrorIs(t, err, docstore.ErrUnknownDriver)
}
