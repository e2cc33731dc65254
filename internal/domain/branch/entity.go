package branch

// Collection is the document store collection holding branches.
const Collection = "branches"

// Branch is a physical location of the organization.
type Branch struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
