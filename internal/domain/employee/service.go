package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pixell-river/hr-directory/pkg/docstore"
)

// Service implements the employee use cases on top of a Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for createdAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAll returns every employee.
func (s *Service) GetAll(ctx context.Context) ([]Employee, error) {
	return s.repo.ListAll(ctx)
}

// GetByID returns nil when the employee does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new employee and returns it as persisted.
func (s *Service) Create(ctx context.Context, fields map[string]any) (*Employee, error) {
	return s.CreateWithID(ctx, "", fields)
}

// CreateWithID stores fields under id, replacing any employee already there.
// An empty id lets the store assign one.
func (s *Service) CreateWithID(ctx context.Context, id string, fields map[string]any) (*Employee, error) {
	stamp := s.timestamp()
	data := withFields(fields, map[string]any{"createdAt": stamp, "updatedAt": stamp})

	newID, err := s.repo.Create(ctx, data, id)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, newID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("employee %s missing after create", newID)
	}
	return e, nil
}

// Update merges fields into the employee, refreshes updatedAt and returns
// the result. It returns nil, nil when the employee does not exist.
func (s *Service) Update(ctx context.Context, id string, fields map[string]any) (*Employee, error) {
	data := withFields(fields, map[string]any{"updatedAt": s.timestamp()})

	if err := s.repo.Update(ctx, id, data); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes the employee. Callers check existence beforehand.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// GetByBranch returns the employees whose branchId equals branchID exactly.
func (s *Service) GetByBranch(ctx context.Context, branchID string) ([]Employee, error) {
	return s.repo.ListWhere(ctx, docstore.Filter{Field: "branchId", Value: branchID})
}

// GetByDepartment returns the employees of department, ignoring case.
func (s *Service) GetByDepartment(ctx context.Context, department string) ([]Employee, error) {
	return s.repo.ListWhere(ctx, docstore.Filter{Field: "department", Value: department, FoldCase: true})
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// withFields returns a copy of fields with extra applied on top.
func withFields(fields, extra map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+len(extra))
	for k, v := range fields {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
