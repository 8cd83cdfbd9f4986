// Package storage implements the compliance document store on top of an
// S3-compatible object store.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"crewdir/config"
	"crewdir/internal/domain/lifecycle"
	"crewdir/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minioStorage implements the service.DocumentStorage interface.
type minioStorage struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// Params defines the parameters required for the document storage
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MinIO-backed document storage.
func New(params Params) (service.DocumentStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage config is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MinIO client")
	}

	storage := &minioStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			exists, err := client.BucketExists(ctx, cfg.Bucket)
			if err != nil {
				return errors.Wrap(err, "failed to check storage bucket")
			}
			if !exists {
				return errors.Errorf("storage bucket %q does not exist", cfg.Bucket)
			}

			return nil
		},
	})

	return storage, nil
}

// Upload stores an object at the given path.
func (s *minioStorage) Upload(ctx context.Context, path string, body io.Reader, size int64, contentType string) error {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, path, body, size, opts); err != nil {
		return errors.Wrapf(err, "failed to upload object %s", path)
	}

	return nil
}

// Remove deletes the given objects. MinIO treats removing a missing object as
// success, which matches the contract.
func (s *minioStorage) Remove(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
			return errors.Wrapf(err, "failed to remove object %s", path)
		}
	}

	return nil
}

// SignedURL mints a time-limited retrieval URL for a stored object.
func (s *minioStorage) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	signed, err := s.client.PresignedGetObject(ctx, s.bucket, path, ttl, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to presign object %s", path)
	}

	return signed.String(), nil
}

// ObjectPath recovers the storage path from a previously minted URL.
func (s *minioStorage) ObjectPath(rawURL string) (string, bool) {
	return objectPathInBucket(rawURL, s.bucket)
}

// objectPathInBucket strips the endpoint and "/<bucket>/" prefix from a
// signed URL, leaving the object key. Split out for testability.
func objectPathInBucket(rawURL, bucket string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	prefix := "/" + bucket + "/"
	if !strings.HasPrefix(parsed.Path, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(parsed.Path, prefix)
	if key == "" {
		return "", false
	}

	return key, true
}
