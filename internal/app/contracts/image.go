package contracts

import (
	"bpa-panel-service/internal/app/models"
	"context"
)

type ImageUsecase interface {
	Fetch(ctx context.Context, rawURL string, credentials models.BackendCredentials) (*models.ProxiedImage, error)
}
