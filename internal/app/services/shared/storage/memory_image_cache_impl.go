package storage

import (
	"bpa-panel-service/internal/app/models"
	"context"
	"sync"
)

// MemoryImageCache keeps images in process memory. Tests use it in place of
// the MinIO cache.
type MemoryImageCache struct {
	mu     sync.RWMutex
	images map[string]models.CachedImage
}

func NewMemoryImageCache() *MemoryImageCache {
	return &MemoryImageCache{images: make(map[string]models.CachedImage)}
}

func (c *MemoryImageCache) Get(ctx context.Context, key string) (*models.CachedImage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	image, ok := c.images[ObjectName(key)]
	if !ok {
		return nil, nil
	}
	body := append([]byte(nil), image.Body...)
	return &models.CachedImage{Body: body, ContentType: image.ContentType}, nil
}

func (c *MemoryImageCache) Put(ctx context.Context, key string, image *models.CachedImage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[ObjectName(key)] = models.CachedImage{
		Body:        append([]byte(nil), image.Body...),
		ContentType: image.ContentType,
	}
	return nil
}

func (c *MemoryImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}
