package repository

import (
	"context"

	"costbook/internal/domain/entity"
	"costbook/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product id does not resolve.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines product persistence operations. Products are
// created and saved through the recipe aggregate; this port exists for
// resolving sub-product references.
type ProductRepository interface {
	// FindByID loads one product. When the product is recipe-backed the
	// recipe and its items are loaded along with it, so the product's unit
	// cost is computable without further round trips.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Save persists the current state of a product.
	Save(ctx context.Context, product *entity.Product) error
}
