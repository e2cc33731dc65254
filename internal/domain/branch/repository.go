package branch

import (
	"context"
)

// Repository defines persistence operations for branches.
type Repository interface {
	// Create stores fields under id, or under a new id when id is empty.
	Create(ctx context.Context, fields map[string]any, id string) (string, error)

	// ListAll returns every branch.
	ListAll(ctx context.Context) ([]Branch, error)

	// GetByID returns nil when the branch does not exist.
	GetByID(ctx context.Context, id string) (*Branch, error)

	// Update merges fields into an existing branch.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes a branch.
	Delete(ctx context.Context, id string) error
}
