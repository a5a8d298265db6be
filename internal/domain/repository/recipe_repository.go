// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"costbook/internal/domain/entity"
	"costbook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for recipe persistence.
var (
	// ErrRecipeNotFound is returned when a recipe id does not resolve.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrVersionNotFound is returned when a version id does not resolve for
	// the given recipe.
	ErrVersionNotFound = errors.New("recipe version not found")
)

// RecipeRepository is the persistence port of the recipe aggregate and its
// version history. Loads are explicit and eager: a returned recipe carries
// its product and its items with resolved ingredient/sub-product references;
// nothing is fetched lazily on access.
//
// Find operations return recipes regardless of the soft-delete flag: the
// not-found policy for deleted recipes lives in the versioning engine, which
// still needs to reach deleted recipes for version lookups.
type RecipeRepository interface {
	// Create persists a new recipe together with its product and items.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Save persists the current state of an existing recipe, replacing its
	// item list wholesale.
	Save(ctx context.Context, recipe *entity.Recipe) error

	// FindByID loads one recipe aggregate.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// FindByClient loads all recipes owned by a client, newest first,
	// excluding soft-deleted ones.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Recipe, error)

	// CreateVersion appends an immutable snapshot to a recipe's history.
	CreateVersion(ctx context.Context, version *entity.RecipeVersion) error

	// CountVersions reports how many versions a recipe has; the engine
	// assigns the next version number as count+1.
	CountVersions(ctx context.Context, recipeID uuid.UUID) (int, error)

	// FindVersions loads a recipe's history ordered by version number
	// descending.
	FindVersions(ctx context.Context, recipeID uuid.UUID) ([]*entity.RecipeVersion, error)

	// FindVersionByID loads one version, scoped to the given recipe.
	FindVersionByID(ctx context.Context, versionID, recipeID uuid.UUID) (*entity.RecipeVersion, error)
}
