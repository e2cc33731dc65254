package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pixell-river/hr-directory/pkg/docstore"
)

// DocumentRepository maps the documents of one collection to values of T.
// T must round-trip through encoding/json; its json tags name the stored fields.
type DocumentRepository[T any] struct {
	store      docstore.Store
	collection string
}

// NewDocumentRepository binds a repository to collection.
func NewDocumentRepository[T any](store docstore.Store, collection string) *DocumentRepository[T] {
	return &DocumentRepository[T]{
		store:      store,
		collection: collection,
	}
}

// Collection returns the collection name the repository is bound to.
func (r *DocumentRepository[T]) Collection() string {
	return r.collection
}

// Create stores data and returns its id. With an explicit id any existing
// document under that id is overwritten; otherwise the store assigns one.
func (r *DocumentRepository[T]) Create(ctx context.Context, data map[string]any, id string) (string, error) {
	body := docstore.Body(data)

	if id != "" {
		if err := r.store.Set(ctx, r.collection, id, body); err != nil {
			return "", fmt.Errorf("set %s/%s: %w", r.collection, id, err)
		}
		return id, nil
	}

	newID, err := r.store.Add(ctx, r.collection, body)
	if err != nil {
		return "", fmt.Errorf("add to %s: %w", r.collection, err)
	}
	return newID, nil
}

// ListAll returns every document of the collection in store order.
func (r *DocumentRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	docs, err := r.store.List(ctx, r.collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.collection, err)
	}
	return r.decodeAll(docs)
}

// GetByID returns nil, nil when the document does not exist.
func (r *DocumentRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	doc, ok, err := r.store.Get(ctx, r.collection, id)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", r.collection, id, err)
	}
	if !ok {
		return nil, nil
	}

	v, err := decode[T](doc)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Update merges fields into the document. The error wraps
// docstore.ErrNotFound when the document does not exist.
func (r *DocumentRepository[T]) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, r.collection, id, docstore.Body(fields)); err != nil {
		return fmt.Errorf("update %s/%s: %w", r.collection, id, err)
	}
	return nil
}

// Delete removes the document; a missing id is not an error.
func (r *DocumentRepository[T]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", r.collection, id, err)
	}
	return nil
}

// ListWhere returns the documents matching filter. Stores implementing
// docstore.Querier evaluate it natively; the rest are scanned.
func (r *DocumentRepository[T]) ListWhere(ctx context.Context, filter docstore.Filter) ([]T, error) {
	var (
		docs []docstore.Document
		err  error
	)

	if q, ok := r.store.(docstore.Querier); ok {
		docs, err = q.Where(ctx, r.collection, filter)
		if err != nil {
			return nil, fmt.Errorf("query %s where %s: %w", r.collection, filter.Field, err)
		}
		return r.decodeAll(docs)
	}

	all, err := r.store.List(ctx, r.collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.collection, err)
	}
	for _, doc := range all {
		if filter.Matches(doc) {
			docs = append(docs, doc)
		}
	}
	return r.decodeAll(docs)
}

func (r *DocumentRepository[T]) decodeAll(docs []docstore.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decode re-attaches the document key as "id" before mapping onto T.
func decode[T any](doc docstore.Document) (T, error) {
	var v T

	fields := make(map[string]any, len(doc.Data)+1)
	for k, val := range doc.Data {
		fields[k] = val
	}
	fields["id"] = doc.ID

	raw, err := json.Marshal(fields)
	if err != nil {
		return v, fmt.Errorf("encode document %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return v, nil
}
