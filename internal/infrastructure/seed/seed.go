// Package seed loads the sample branch and employee directory.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/pixell-river/hr-directory/internal/domain/branch"
	"github.com/pixell-river/hr-directory/internal/domain/employee"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

//go:embed data/*.json
var files embed.FS

// BranchWriter stores a branch under a fixed id.
type BranchWriter interface {
	CreateWithID(ctx context.Context, id string, fields map[string]any) (*branch.Branch, error)
}

// EmployeeWriter stores an employee under a fixed id.
type EmployeeWriter interface {
	CreateWithID(ctx context.Context, id string, fields map[string]any) (*employee.Employee, error)
}

// Result counts the records written.
type Result struct {
	Branches  int
	Employees int
}

// Run upserts the sample directory. Records keep their sample ids, so running
// it twice leaves the same data behind.
func Run(ctx context.Context, branches BranchWriter, employees EmployeeWriter, log logger.Logger) (Result, error) {
	var result Result

	branchRecords, err := load("data/branches.json")
	if err != nil {
		return result, err
	}
	for _, rec := range branchRecords {
		if _, err := branches.CreateWithID(ctx, rec.id, rec.fields); err != nil {
			return result, fmt.Errorf("seed branch %s: %w", rec.id, err)
		}
		result.Branches++
	}

	employeeRecords, err := load("data/employees.json")
	if err != nil {
		return result, err
	}
	for _, rec := range employeeRecords {
		if _, err := employees.CreateWithID(ctx, rec.id, rec.fields); err != nil {
			return result, fmt.Errorf("seed employee %s: %w", rec.id, err)
		}
		result.Employees++
	}

	log.Info("sample data loaded", "branches", result.Branches, "employees", result.Employees)
	return result, nil
}

type record struct {
	id     string
	fields map[string]any
}

func load(name string) ([]record, error) {
	raw, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	records := make([]record, 0, len(docs))
	for _, doc := range docs {
		id, _ := doc["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("%s: record without id", name)
		}
		delete(doc, "id")
		records = append(records, record{id: id, fields: doc})
	}
	return records, nil
}
