package responses

type BranchPreference struct {
	BranchID string `json:"branch_id,omitempty"`
}
