package requests

type SaveBranchPreference struct {
	BranchID string `json:"branch_id" validate:"required,max=64"`
}
