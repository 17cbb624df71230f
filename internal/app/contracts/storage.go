package contracts

import (
	"bpa-panel-service/internal/app/models"
	"context"
)

// ImageCache holds proxied images. Get returns nil, nil on a miss.
type ImageCache interface {
	Get(ctx context.Context, key string) (*models.CachedImage, error)
	Put(ctx context.Context, key string, image *models.CachedImage) error
}
