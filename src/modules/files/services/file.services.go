package files

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"
	"watchlog/src/config"
	"watchlog/src/utils"

	"github.com/minio/minio-go/v7"
)

// FileService streams a stored poster image, going through the Redis byte
// cache first when it is configured.
func FileService(filePath string) (io.Reader, int64, string, *utils.ServiceError) {
	if config.MinioClient == nil {
		return nil, 0, "", &utils.ServiceError{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "image storage is not configured",
		}
	}

	objectKey := strings.TrimPrefix(filePath, "/")
	minioClient := config.MinioClient
	bucketName := config.BucketName
	cacheKey := "image_cache:" + objectKey

	// 1. Try to get from Redis cache
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			log.Printf("[CACHE HIT] %s", cacheKey)
			contentType := http.DetectContentType(cached)
			return bytes.NewReader(cached), int64(len(cached)), contentType, nil
		}
		log.Printf("[CACHE MISS] %s", cacheKey)
	}

	// 2. Fetch from MinIO
	obj, err := minioClient.GetObject(context.Background(), bucketName, objectKey, minio.GetObjectOptions{})
	if err == nil {
		stat, err := obj.Stat()
		if err == nil {
			// Read all content to cache it
			data, err := io.ReadAll(obj)
			if err == nil {
				if config.RDB != nil {
					_ = config.RDB.Set(config.Ctx, cacheKey, data, 6*time.Hour).Err()
				}
				return bytes.NewReader(data), stat.Size, stat.ContentType, nil
			}
		}
	}

	return nil, 0, "", &utils.ServiceError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("object not found: %s", objectKey),
	}
}

// UploadService stores a poster image and returns the path to serve it from.
func UploadService(reader io.Reader, size int64, contentType, filename string) (string, *utils.ServiceError) {
	if config.MinioClient == nil {
		return "", &utils.ServiceError{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "image storage is not configured",
		}
	}

	objectKey := fmt.Sprintf("%d-%s", time.Now().UnixNano(), path.Base(filename))

	_, err := config.MinioClient.PutObject(
		context.Background(),
		config.BucketName,
		objectKey,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", &utils.ServiceError{
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("failed to store image: %v", err),
		}
	}

	return "/static/" + objectKey, nil
}
