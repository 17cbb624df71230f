package preferences

import (
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/pkg/constvars"
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type preferenceUsecase struct {
	Store contracts.RedisRepository
	Log   *zap.Logger
}

func NewPreferenceUsecase(store contracts.RedisRepository, logger *zap.Logger) contracts.PreferenceUsecase {
	return &preferenceUsecase{
		Store: store,
		Log:   logger,
	}
}

func branchKey(owner string) string {
	return fmt.Sprintf(constvars.ScopedKeyFormat, owner, constvars.OwnerBranchIDKey)
}

// GetSelectedBranch returns "" when nothing usable is stored.
func (uc *preferenceUsecase) GetSelectedBranch(ctx context.Context, owner string) (string, error) {
	raw, err := uc.Store.Get(ctx, branchKey(owner))
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", nil
	}

	var branchID string
	err = json.Unmarshal([]byte(raw), &branchID)
	if err != nil {
		uc.Log.Warn("preferenceUsecase.GetSelectedBranch "+constvars.ErrDevPreferenceBranchIDMalformed,
			zap.Error(err),
		)
		return "", nil
	}
	return branchID, nil
}

func (uc *preferenceUsecase) SaveSelectedBranch(ctx context.Context, owner, branchID string) error {
	return uc.Store.Set(ctx, branchKey(owner), branchID, 0)
}

func (uc *preferenceUsecase) ClearSelectedBranch(ctx context.Context, owner string) error {
	return uc.Store.Delete(ctx, branchKey(owner))
}
