package storage

import (
	"context"
	"testing"

	"costbook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobImageStorage_Save(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{
		BucketURL:     "mem://",
		PublicBaseURL: "https://img.example.com/",
	}

	store, err := NewBlobImageStorage(ctx, cfg)
	require.NoError(t, err)
	defer store.Close()

	url, err := store.Save(ctx, "ingredients/abc.png", []byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/ingredients/abc.png", url)
}

func TestNewBlobImageStorage_RequiresBucketURL(t *testing.T) {
	_, err := NewBlobImageStorage(context.Background(), &config.Config{})
	assert.Error(t, err)
}
