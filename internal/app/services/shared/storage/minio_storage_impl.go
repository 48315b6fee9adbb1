package storage

import (
	"context"
	"net/url"
	"time"

	"pawcare-service/internal/app/contracts"
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.AttachmentResolver {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

// ResolveRetrievalURL mints a presigned GET URL for a stored object key.
// An empty key resolves to "" without error so encoders can emit the
// resource with a null url instead of failing the whole bundle.
func (m *minioStorage) ResolveRetrievalURL(ctx context.Context, fileKey string) (string, error) {
	if fileKey == "" {
		return "", nil
	}

	expiry := time.Duration(constvars.SignedURLExpiryDays) * 24 * time.Hour
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, fileKey, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, m.BucketName)
	}

	return presignedURL.String(), nil
}
