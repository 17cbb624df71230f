package contracts

import "context"

type PreferenceUsecase interface {
	GetSelectedBranch(ctx context.Context, owner string) (string, error)
	SaveSelectedBranch(ctx context.Context, owner, branchID string) error
	ClearSelectedBranch(ctx context.Context, owner string) error
}
