package repository

import (
	"context"

	"costbook/internal/domain/entity"
	"costbook/internal/errors"

	"github.com/google/uuid"
)

// ErrSupplierNotFound is returned when a supplier id does not resolve.
var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierRepository defines supplier persistence operations.
type SupplierRepository interface {
	// Create persists a new supplier.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// Save persists the current state of an existing supplier.
	Save(ctx context.Context, supplier *entity.Supplier) error

	// FindByID loads one supplier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindByClient loads all suppliers owned by a client, by name.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Supplier, error)

	// Delete removes a supplier. Fails with a referential-integrity error
	// when ingredients still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
