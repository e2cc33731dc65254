package employee

import (
	"context"

	"github.com/pixell-river/hr-directory/pkg/docstore"
)

// Repository defines persistence operations for employees.
type Repository interface {
	Create(ctx context.Context, fields map[string]any, id string) (string, error)
	ListAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	// ListWhere returns the employees matching filter.
	ListWhere(ctx context.Context, filter docstore.Filter) ([]Employee, error)
}
