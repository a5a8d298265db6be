package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SupplierInput carries the writable fields of a supplier.
type SupplierInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	TaxID string `json:"tax_id"`
}

// SupplierOutput is the read model of a supplier.
type SupplierOutput struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierUsecase manages the authenticated client's suppliers.
type SupplierUsecase interface {
	// Insert creates a supplier owned by the authenticated client.
	Insert(ctx context.Context, input *SupplierInput) (*SupplierOutput, error)

	// Update replaces a supplier's writable fields.
	Update(ctx context.Context, id uuid.UUID, input *SupplierInput) (*SupplierOutput, error)

	// Delete removes a supplier.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns one supplier.
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierOutput, error)

	// FindByClient lists the authenticated client's suppliers.
	FindByClient(ctx context.Context) ([]*SupplierOutput, error)
}
