package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pattaya-dashboard/internal/config"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// minioStorage читает датасеты из S3-совместимого хранилища
type minioStorage struct {
	client *minio.Client
	logger *zap.Logger
}

// NewMinioStorage создает клиента S3-совместимого хранилища
func NewMinioStorage(cfg *config.S3Config, logger *zap.Logger) (repository.ObjectStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("missing one or more required settings: S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.Info("Object storage client created", zap.String("endpoint", cfg.Endpoint))

	return &minioStorage{client: client, logger: logger}, nil
}

// Open возвращает поток объекта. Stat вызывается сразу, чтобы NoSuchKey проявился здесь, а не при чтении.
func (s *minioStorage) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s/%s: %w", bucket, key, err)
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("object %s/%s does not exist: %w", bucket, key, err)
		}
		return nil, fmt.Errorf("failed to stat object %s/%s: %w", bucket, key, err)
	}

	s.logger.Debug("Object opened",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int64("size", info.Size),
	)

	return obj, nil
}
