// Package s3 implements the object-storage port against any S3-compatible
// endpoint (AWS S3, MinIO) using the MinIO client.
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config captures the settings for reaching the upload bucket.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base URL recorded in upload metadata. When empty,
	// a URL is derived from the endpoint and bucket.
	PublicURL string
}

// BlobStore stores upload payloads in a single bucket.
type BlobStore struct {
	client *minio.Client
	cfg    Config
}

// New creates the S3 client and verifies the bucket exists.
func New(ctx context.Context, cfg Config) (*BlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	ok, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("s3 bucket check: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("s3 bucket %q does not exist", cfg.Bucket)
	}

	return &BlobStore{client: client, cfg: cfg}, nil
}

// Put streams the payload under key and returns the object's public URL.
func (b *BlobStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := b.client.PutObject(ctx, b.cfg.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %q: %w", key, err)
	}
	return b.objectURL(key), nil
}

// Remove deletes a stored object. Used to compensate a failed metadata write.
func (b *BlobStore) Remove(ctx context.Context, key string) error {
	if err := b.client.RemoveObject(ctx, b.cfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("s3 remove %q: %w", key, err)
	}
	return nil
}

func (b *BlobStore) objectURL(key string) string {
	if b.cfg.PublicURL != "" {
		return strings.TrimRight(b.cfg.PublicURL, "/") + "/" + key
	}
	scheme := "http"
	if b.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, b.cfg.Endpoint, b.cfg.Bucket, key)
}
