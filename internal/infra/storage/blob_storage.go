// Package storage persists uploaded images through a portable blob bucket,
// so local disk and cloud buckets are interchangeable via the bucket URL.
package storage

import (
	"context"
	"strings"

	"costbook/config"
	"costbook/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

type blobImageStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBlobImageStorage opens the configured bucket and returns it as a
// service.ImageStorage.
func NewBlobImageStorage(ctx context.Context, cfg *config.Config) (service.ImageStorage, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	return &blobImageStorage{
		bucket:  bucket,
		baseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// Save writes the image bytes under the given key and returns the public URL
// to persist on the owning entity.
func (s *blobImageStorage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close blob writer")
	}

	return s.baseURL + "/" + key, nil
}

// Close releases the bucket.
func (s *blobImageStorage) Close() error {
	return s.bucket.Close()
}
