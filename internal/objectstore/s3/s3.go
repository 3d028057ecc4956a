// Package s3 implements the object store contract against any
// S3-compatible endpoint via the MinIO client.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/srikarthikeya/caterers/internal/errs"
	"github.com/srikarthikeya/caterers/internal/objectstore"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Store struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// New builds the client and ensures the bucket exists.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("bucket created", "bucket", cfg.Bucket)
	}

	return &Store{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func (s *Store) Upload(ctx context.Context, data []byte, contentType, filename, prefix string) (string, error) {
	if err := objectstore.ValidateImage(data, filename); err != nil {
		return "", err
	}

	key := objectstore.GenerateKey(prefix, filename)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errs.Internal(err, "failed to upload file")
	}

	s.logger.Info("object uploaded", "key", key, "bytes", len(data))
	return key, nil
}

// Replace uploads the new payload first and removes the old object last,
// so a failed upload leaves the existing object untouched.
func (s *Store) Replace(ctx context.Context, existingKey string, data []byte, contentType, filename string) (string, error) {
	if err := objectstore.ValidateImage(data, filename); err != nil {
		return "", err
	}

	exists, err := s.Exists(ctx, existingKey)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errs.BadRequest("file not found: %s", existingKey)
	}

	key, err := s.Upload(ctx, data, contentType, filename, objectstore.KeyPrefix(existingKey))
	if err != nil {
		return "", err
	}
	if err := s.Delete(ctx, existingKey); err != nil {
		s.logger.Error("failed to delete replaced object", "key", existingKey, "error", err)
	}
	return key, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errs.Internal(err, "failed to delete file")
	}
	s.logger.Info("object deleted", "key", key)
	return nil
}

func (s *Store) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", errs.Internal(err, "failed to generate presigned URL")
	}
	return u.String(), nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, errs.Internal(err, "failed to check file existence")
	}
	return true, nil
}
