package service

import "context"

// ImageStorage stores uploaded images and returns the public URL persisted on
// the owning entity.
type ImageStorage interface {
	// Save writes the image bytes under the given key and returns its URL.
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Close releases any resources held by the storage backend.
	Close() error
}
