package employee

import "time"

// Collection is the document store collection holding employees.
const Collection = "employees"

// Employee is a person working at a branch. BranchID references a Branch
// but the reference is not enforced.
type Employee struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	BranchID   string     `json:"branchId"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}
