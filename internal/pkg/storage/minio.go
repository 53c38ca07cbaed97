package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig configures the MinIO-backed Storage.
type MinioConfig struct {
	// Endpoint is the MinIO server address (host:port).
	Endpoint string
	// AccessKey and SecretKey authenticate against the server.
	AccessKey string
	SecretKey string
	// Bucket is the bucket all objects live in.
	Bucket string
	// UseSSL enables TLS for server connections.
	UseSSL bool
}

// Minio is a Storage implementation backed by a MinIO (or S3-compatible) server.
type Minio struct {
	client *minio.Client
	bucket string
}

// NewMinio connects to the MinIO server and ensures the bucket exists.
func NewMinio(ctx context.Context, cfg MinioConfig) (*Minio, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: minio connect: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: minio make bucket: %w", err)
		}
	}

	return &Minio{client: client, bucket: cfg.Bucket}, nil
}

// Upload stores the content under key.
func (m *Minio) Upload(ctx context.Context, key, contentType string, size int64, r io.Reader) (Object, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Object{}, fmt.Errorf("storage: minio upload: %w", err)
	}

	return Object{
		Key:         info.Key,
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}

// PresignedURL returns a time-limited download URL for the object.
func (m *Minio) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("storage: minio presign: %w", err)
	}
	return u.String(), nil
}

// Delete removes the object.
func (m *Minio) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: minio delete: %w", err)
	}
	return nil
}
