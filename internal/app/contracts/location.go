package contracts

import (
	"bpa-panel-service/internal/app/models"
	"context"
)

type RecentLocationUsecase interface {
	List(ctx context.Context, scope models.LocationScope) ([]models.RecentLocation, error)
	Save(ctx context.Context, scope models.LocationScope, location models.RecentLocation) ([]models.RecentLocation, error)
	Clear(ctx context.Context, scope models.LocationScope) error
	Limit() int
}
