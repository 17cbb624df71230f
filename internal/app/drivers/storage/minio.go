package storage

import (
	"bpa-panel-service/internal/app/config"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio returns nil when no host or bucket is configured, which disables
// the image cache.
func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	if !driverConfig.Minio.Enabled() {
		log.Println("Minio is not configured, image cache disabled")
		return nil
	}

	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := minioClient.BucketExists(ctx, driverConfig.Minio.BucketName)
	if err != nil {
		log.Fatalf("Failed to check Minio bucket %s: %s", driverConfig.Minio.BucketName, err.Error())
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, driverConfig.Minio.BucketName, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatalf("Failed to create Minio bucket %s: %s", driverConfig.Minio.BucketName, err.Error())
		}
	}

	log.Println("Successfully connected to minio")
	return minioClient
}
