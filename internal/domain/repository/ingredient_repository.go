package repository

import (
	"context"

	"costbook/internal/domain/entity"
	"costbook/internal/errors"

	"github.com/google/uuid"
)

// ErrIngredientNotFound is returned when an ingredient id does not resolve.
var ErrIngredientNotFound = errors.New("ingredient not found")

// IngredientRepository defines ingredient persistence operations.
type IngredientRepository interface {
	// Create persists a new ingredient.
	Create(ctx context.Context, ingredient *entity.Ingredient) error

	// Save persists the current state of an existing ingredient.
	Save(ctx context.Context, ingredient *entity.Ingredient) error

	// FindByID loads one ingredient.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error)

	// FindByClient loads all ingredients owned by a client, by name.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Ingredient, error)

	// Delete removes an ingredient. Fails with a referential-integrity error
	// when recipe items still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
