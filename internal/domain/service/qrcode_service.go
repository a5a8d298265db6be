package service

import "github.com/google/uuid"

// QRCodeService generates shareable QR codes for products.
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code pointing at a product's public
	// reference.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)
}
