package qrcode

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateProductQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.True(t, bytes.HasPrefix(png, []byte{0x89, 0x50, 0x4e, 0x47}))
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateProductQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
