// Package docstore defines the contract of the schemaless document store the
// service persists into. Documents live in named collections and are addressed
// by a string id; the store owns id generation, durability and per-document
// atomicity.
package docstore

import (
	"context"
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrNotFound is returned by Update when the target document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrUnknownDriver is returned when the configured driver has no implementation.
	ErrUnknownDriver = errors.New("unknown document store driver")
)

// Document is a single stored record. Data never carries the id; the id is
// the key the document is addressed by.
type Document struct {
	ID   string
	Data map[string]any
}

// Store is the narrow client every backing store implements.
type Store interface {
	// Add stores data under a new store-assigned id and returns that id.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)

	// Set writes data under id, overwriting any existing document.
	Set(ctx context.Context, collection, id string, data map[string]any) error

	// Get returns the document and whether it exists. A missing document is not an error.
	Get(ctx context.Context, collection, id string) (Document, bool, error)

	// List returns every document in the collection in store-defined order.
	List(ctx context.Context, collection string) ([]Document, error)

	// Update merges fields into an existing document. Returns ErrNotFound if
	// the document does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes the document. Deleting a missing id succeeds.
	Delete(ctx context.Context, collection, id string) error

	// Ping checks connectivity with the backing store.
	Ping(ctx context.Context) error

	// Close releases the client resources.
	Close() error
}

// Filter selects documents whose string field equals Value. With FoldCase
// both sides are lower-cased before comparing.
type Filter struct {
	Field    string
	Value    string
	FoldCase bool
}

// Querier is implemented by stores able to evaluate a Filter natively.
type Querier interface {
	Where(ctx context.Context, collection string, filter Filter) ([]Document, error)
}

// Matches reports whether the document satisfies the filter. Stores without a
// native query path and the in-memory fallback use it so every backend shares
// the same comparison.
func (f Filter) Matches(doc Document) bool {
	raw, ok := doc.Data[f.Field]
	if !ok {
		return false
	}
	value, ok := raw.(string)
	if !ok {
		return false
	}
	if f.FoldCase {
		return Lower(value) == Lower(f.Value)
	}
	return value == f.Value
}

// Lower is the case mapping used for case-insensitive comparisons.
func Lower(s string) string {
	// cases.Caser keeps state between calls, so one per call.
	return cases.Lower(language.Und).String(s)
}

// Body copies the top level of a document body, dropping any "id" key so the
// key used to address a document is never persisted inside it.
func Body(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}
