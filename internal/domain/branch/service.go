package branch

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixell-river/hr-directory/pkg/docstore"
)

// Service implements the branch use cases on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetAll returns every branch.
func (s *Service) GetAll(ctx context.Context) ([]Branch, error) {
	return s.repo.ListAll(ctx)
}

// GetByID returns nil when the branch does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*Branch, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new branch and returns it as persisted.
func (s *Service) Create(ctx context.Context, fields map[string]any) (*Branch, error) {
	return s.CreateWithID(ctx, "", fields)
}

// CreateWithID stores fields under id, replacing any branch already there.
// An empty id lets the store assign one.
func (s *Service) CreateWithID(ctx context.Context, id string, fields map[string]any) (*Branch, error) {
	newID, err := s.repo.Create(ctx, fields, id)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, newID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("branch %s missing after create", newID)
	}
	return b, nil
}

// Update merges fields into the branch and returns the result. It returns
// nil, nil when the branch does not exist.
func (s *Service) Update(ctx context.Context, id string, fields map[string]any) (*Branch, error) {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes the branch. Callers check existence beforehand.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
