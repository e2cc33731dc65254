package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/docstore"
)

// NewPool creates a connection pool and verifies the database answers.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	poolConfig.MaxConns = cfg.Postgres.MaxConnections
	poolConfig.MinConns = cfg.Postgres.MinConnections
	poolConfig.MaxConnLifetime = cfg.Postgres.MaxConnLifetime
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// PostgresStore keeps every collection in a single JSONB table keyed by
// (collection, id).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an open pool. The documents table must exist; see RunMigrations.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Add implements docstore.Store.Add
func (s *PostgresStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	payload, err := encode(data)
	if err != nil {
		return "", err
	}

	_, err = s.pool.Exec(ctx,
		"INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)",
		collection, id, payload)
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

// Set implements docstore.Store.Set
func (s *PostgresStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	payload, err := encode(data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	if _, err := s.pool.Exec(ctx, query, collection, id, payload); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

// Get implements docstore.Store.Get
func (s *PostgresStore) Get(ctx context.Context, collection, id string) (docstore.Document, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		"SELECT data FROM documents WHERE collection = $1 AND id = $2",
		collection, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return docstore.Document{}, false, nil
		}
		return docstore.Document{}, false, fmt.Errorf("select document: %w", err)
	}

	data, err := decode(raw)
	if err != nil {
		return docstore.Document{}, false, err
	}
	return docstore.Document{ID: id, Data: data}, true, nil
}

// List implements docstore.Store.List
func (s *PostgresStore) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	return s.query(ctx,
		"SELECT id, data FROM documents WHERE collection = $1 ORDER BY created_at, id",
		collection)
}

// Where implements docstore.Querier.Where
func (s *PostgresStore) Where(ctx context.Context, collection string, filter docstore.Filter) ([]docstore.Document, error) {
	query := "SELECT id, data FROM documents WHERE collection = $1 AND data->>$2 = $3 ORDER BY created_at, id"
	value := filter.Value
	if filter.FoldCase {
		query = "SELECT id, data FROM documents WHERE collection = $1 AND lower(data->>$2) = $3 ORDER BY created_at, id"
		value = docstore.Lower(filter.Value)
	}
	return s.query(ctx, query, collection, filter.Field, value)
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]docstore.Document, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := []docstore.Document{}
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		data, err := decode(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, docstore.Document{ID: id, Data: data})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

// Update implements docstore.Store.Update. The merge happens in a single
// statement so concurrent updates to different fields both land.
func (s *PostgresStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	payload, err := encode(fields)
	if err != nil {
		return err
	}

	result, err := s.pool.Exec(ctx,
		"UPDATE documents SET data = data || $3::jsonb, updated_at = NOW() WHERE collection = $1 AND id = $2",
		collection, id, payload)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// Delete implements docstore.Store.Delete
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.pool.Exec(ctx,
		"DELETE FROM documents WHERE collection = $1 AND id = $2",
		collection, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// Ping implements docstore.Store.Ping
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close implements docstore.Store.Close
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
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
