// Package cache implements the document store on Redis. Each collection is a
// hash whose fields are document ids and whose values are JSON bodies.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/docstore"
)

const keyPrefix = "hr-directory:"

// maxUpdateRetries bounds optimistic-lock retries in Update.
const maxUpdateRetries = 10

// RedisStore implements docstore.Store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient opens a client from the REDIS_* settings.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func collectionKey(collection string) string {
	return keyPrefix + collection
}

func (s *RedisStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	payload, err := encode(data)
	if err != nil {
		return "", err
	}

	ok, err := s.client.HSetNX(ctx, collectionKey(collection), id, payload).Result()
	if err != nil {
		return "", fmt.Errorf("redis hsetnx: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("redis hsetnx: id %s already taken", id)
	}
	return id, nil
}

func (s *RedisStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	payload, err := encode(data)
	if err != nil {
		return err
	}
	if err := s.client.HSet(ctx, collectionKey(collection), id, payload).Err(); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) (docstore.Document, bool, error) {
	raw, err := s.client.HGet(ctx, collectionKey(collection), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return docstore.Document{}, false, nil
	}
	if err != nil {
		return docstore.Document{}, false, fmt.Errorf("redis hget: %w", err)
	}

	data, err := decode(raw)
	if err != nil {
		return docstore.Document{}, false, err
	}
	return docstore.Document{ID: id, Data: data}, true, nil
}

// List returns the documents ordered by id; Redis hashes carry no insertion order.
func (s *RedisStore) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	entries, err := s.client.HGetAll(ctx, collectionKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}

	docs := make([]docstore.Document, 0, len(entries))
	for id, raw := range entries {
		data, err := decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		docs = append(docs, docstore.Document{ID: id, Data: data})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Update merges fields under WATCH so a concurrent writer forces a retry
// instead of a lost update.
func (s *RedisStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	key := collectionKey(collection)

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, id).Bytes()
		if errors.Is(err, redis.Nil) {
			return docstore.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("redis hget: %w", err)
		}

		data, err := decode(raw)
		if err != nil {
			return err
		}
		for k, v := range fields {
			data[k] = v
		}
		payload, err := encode(data)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, id, payload)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, docstore.ErrNotFound) {
			return fmt.Errorf("redis update: %w", err)
		}
		return err
	}
	return fmt.Errorf("redis update %s/%s: too many concurrent writers", collection, id)
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.client.HDel(ctx, collectionKey(collection), id).Err(); err != nil {
		return fmt.Errorf("redis hdel: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func encode(data map[string]any) ([]byte, error) {
	payload, err := json.Marshal(docstore.Body(data))
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return payload, nil
}

func decode(raw []byte) (map[string]any, error) {
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return data, nil
}
