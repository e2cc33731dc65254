package docstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store. Documents are listed in insertion order.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

type memoryCollection struct {
	order []string
	docs  map[string]map[string]any
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]*memoryCollection)}
}

func (m *Memory) collection(name string) *memoryCollection {
	c, ok := m.collections[name]
	if !ok {
		c = &memoryCollection{docs: make(map[string]map[string]any)}
		m.collections[name] = c
	}
	return c
}

func (c *memoryCollection) put(id string, data map[string]any) {
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = data
}

// Add implements Store.Add
func (m *Memory) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.collection(collection).put(id, Body(data))
	return id, nil
}

// Set implements Store.Set
func (m *Memory) Set(ctx context.Context, collection, id string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collection(collection).put(id, Body(data))
	return nil
}

// Get implements Store.Get
func (m *Memory) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return Document{}, false, nil
	}
	data, ok := c.docs[id]
	if !ok {
		return Document{}, false, nil
	}
	return Document{ID: id, Data: Body(data)}, true, nil
}

// List implements Store.List
func (m *Memory) List(ctx context.Context, collection string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return []Document{}, nil
	}
	docs := make([]Document, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, Document{ID: id, Data: Body(c.docs[id])})
	}
	return docs, nil
}

// Update implements Store.Update
func (m *Memory) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return ErrNotFound
	}
	existing, ok := c.docs[id]
	if !ok {
		return ErrNotFound
	}
	merged := Body(existing)
	for k, v := range Body(fields) {
		merged[k] = v
	}
	c.docs[id] = merged
	return nil
}

// Delete implements Store.Delete
func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil
	}
	if _, ok := c.docs[id]; !ok {
		return nil
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ping implements Store.Ping
func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close implements Store.Close
func (m *Memory) Close() error {
	return nil
}
