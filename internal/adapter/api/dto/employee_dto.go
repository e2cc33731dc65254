package dto

// EmployeeRequest is the body of POST and PUT /employees. On PUT every field
// is optional, but a supplied field must satisfy its rule.
type EmployeeRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=50" example:"Jane Smith"`
	Position   string `json:"position" validate:"required,min=2,max=50" example:"Software Developer"`
	Department string `json:"department" validate:"required,min=2,max=50" example:"Engineering"`
	Email      string `json:"email" validate:"required,email" example:"jane.smith@pixell-river.com"`
	Phone      string `json:"phone" validate:"required,min=7,max=20" example:"+1-555-123-4567"`
	BranchID   string `json:"branchId" validate:"required" example:"1"`
}

// Complete reports whether every required field is present.
func (r EmployeeRequest) Complete() bool {
	return r.Name != "" && r.Position != "" && r.Department != "" &&
		r.Email != "" && r.Phone != "" && r.BranchID != ""
}

// Fields returns the request as document fields.
func (r EmployeeRequest) Fields() map[string]any {
	return map[string]any{
		"name":       r.Name,
		"position":   r.Position,
		"department": r.Department,
		"email":      r.Email,
		"phone":      r.Phone,
		"branchId":   r.BranchID,
	}
}
