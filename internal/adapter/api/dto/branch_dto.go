package dto

// BranchRequest is the body of POST and PUT /branches. On PUT every field is
// optional, but a supplied field must satisfy its rule.
type BranchRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50" example:"Downtown Branch"`
	Address string `json:"address" validate:"required,min=5,max=100" example:"123 Main Street, Winnipeg, MB"`
	Phone   string `json:"phone" validate:"required,tendigits" example:"2045551234"`
}

// Complete reports whether every required field is present.
func (r BranchRequest) Complete() bool {
	return r.Name != "" && r.Address != "" && r.Phone != ""
}

// Fields returns the request as document fields.
func (r BranchRequest) Fields() map[string]any {
	return map[string]any{
		"name":    r.Name,
		"address": r.Address,
		"phone":   r.Phone,
	}
}
