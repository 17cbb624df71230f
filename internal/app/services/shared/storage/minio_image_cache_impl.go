package storage

import (
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/minio/minio-go/v7"
)

type minioImageCache struct {
	MinioClient *minio.Client
	BucketName  string
	MaxSize     int64
}

func NewMinioImageCache(minioClient *minio.Client, bucketName string, maxSize int64) contracts.ImageCache {
	return &minioImageCache{
		MinioClient: minioClient,
		BucketName:  bucketName,
		MaxSize:     maxSize,
	}
}

// ObjectName maps an image URL to its object key.
func ObjectName(key string) string {
	sum := sha256.Sum256([]byte(key))
	return constvars.ImageCacheObjectPrefix + hex.EncodeToString(sum[:])
}

func (m *minioImageCache) Get(ctx context.Context, key string) (*models.CachedImage, error) {
	objectName := ObjectName(key)
	info, err := m.MinioClient.StatObject(ctx, m.BucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	defer object.Close()

	body, err := io.ReadAll(io.LimitReader(object, m.MaxSize+1))
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	if int64(len(body)) > m.MaxSize {
		return nil, nil
	}

	return &models.CachedImage{
		Body:        body,
		ContentType: info.ContentType,
	}, nil
}

func (m *minioImageCache) Put(ctx context.Context, key string, image *models.CachedImage) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		ObjectName(key),
		bytes.NewReader(image.Body),
		int64(len(image.Body)),
		minio.PutObjectOptions{
			ContentType: image.ContentType,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}
