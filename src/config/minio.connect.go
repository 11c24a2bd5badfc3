package config

import (
	"context"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	MinioClient *minio.Client
	BucketName  string
)

// ConnectMinio sets up poster image storage. MinIO is optional: when
// MINIO_ENDPOINT is not set, MinioClient stays nil and the image routes
// answer 503.
func ConnectMinio() *minio.Client {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		fmt.Println("MINIO_ENDPOINT not set, running without image storage")
		return nil
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "posters"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		fmt.Printf("Failed to connect to MinIO: %v\n", err)
		return nil
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		fmt.Printf("Failed to check MinIO bucket: %v\n", err)
		return nil
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			fmt.Printf("Failed to create MinIO bucket: %v\n", err)
			return nil
		}
	}

	MinioClient = client
	BucketName = bucket
	fmt.Println("MinIO connected, bucket:", bucket)
	return client
}
