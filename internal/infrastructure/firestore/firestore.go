// Package firestore implements the document store on Google Cloud Firestore.
package firestore

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/docstore"
)

// healthCollection is read by Ping; the document never has to exist.
const healthCollection = "_health"

// Store implements docstore.Store and docstore.Querier.
type Store struct {
	client *firestore.Client
}

// NewClient opens a Firestore client. With an empty CredentialsFile the
// client falls back to Application Default Credentials, or to the emulator
// when FIRESTORE_EMULATOR_HOST is set.
func NewClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}

// NewStore wraps an open client.
func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, docstore.Body(data))
	if err != nil {
		return "", fmt.Errorf("firestore add: %w", err)
	}
	return ref.ID, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data map[string]any) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, docstore.Body(data)); err != nil {
		return fmt.Errorf("firestore set: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, bool, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return docstore.Document{}, false, nil
	}
	if err != nil {
		return docstore.Document{}, false, fmt.Errorf("firestore get: %w", err)
	}
	return docstore.Document{ID: snap.Ref.ID, Data: snap.Data()}, true, nil
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore list: %w", err)
	}
	return toDocuments(snaps), nil
}

// Where pushes exact filters down to Firestore. Firestore has no
// case-insensitive equality, so FoldCase filters scan the collection.
func (s *Store) Where(ctx context.Context, collection string, filter docstore.Filter) ([]docstore.Document, error) {
	if filter.FoldCase {
		all, err := s.List(ctx, collection)
		if err != nil {
			return nil, err
		}
		docs := []docstore.Document{}
		for _, doc := range all {
			if filter.Matches(doc) {
				docs = append(docs, doc)
			}
		}
		return docs, nil
	}

	snaps, err := s.client.Collection(collection).
		Where(filter.Field, "==", filter.Value).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore where: %w", err)
	}
	return toDocuments(snaps), nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	body := docstore.Body(fields)
	if len(body) == 0 {
		_, ok, err := s.Get(ctx, collection, id)
		if err != nil {
			return err
		}
		if !ok {
			return docstore.ErrNotFound
		}
		return nil
	}

	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: body[k]})
	}

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return docstore.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("firestore update: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore delete: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.Collection(healthCollection).Doc("ping").Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func toDocuments(snaps []*firestore.DocumentSnapshot) []docstore.Document {
	docs := make([]docstore.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, docstore.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs
}
