// Package usecase defines the application's use case interfaces and the
// plain data records crossing them. No framework types leak through here.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeItemInput is one component of an incoming recipe. Exactly one of
// IngredientID and SubProductID must be set.
type RecipeItemInput struct {
	IngredientID *uuid.UUID      `json:"ingredient_id,omitempty"`
	SubProductID *uuid.UUID      `json:"sub_product_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// RecipeInput carries the writable fields of a recipe and its product.
type RecipeInput struct {
	ProductName  string            `json:"product_name" validate:"required"`
	ProductPrice decimal.Decimal   `json:"product_price"`
	ImgURL       string            `json:"img_url,omitempty"`
	Description  string            `json:"description"`
	Amount       int               `json:"amount" validate:"gt=0"`
	Items        []RecipeItemInput `json:"items"`
}

// FinancialSummary is derived at read/write time from frozen item costs and
// the sale price; it is never persisted on the recipe row. CostPerUnit and
// Margin are null when undefined (zero portions, zero sale price).
type FinancialSummary struct {
	TotalCost   decimal.Decimal  `json:"total_cost"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit,omitempty"`
	Profit      decimal.Decimal  `json:"profit"`
	Margin      *decimal.Decimal `json:"margin,omitempty"`
}

// RecipeItemOutput is one component of a returned recipe.
type RecipeItemOutput struct {
	ID           uuid.UUID       `json:"id"`
	IngredientID *uuid.UUID      `json:"ingredient_id,omitempty"`
	SubProductID *uuid.UUID      `json:"sub_product_id,omitempty"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// RecipeOutput is the full read model of a recipe, financials included.
type RecipeOutput struct {
	ID             uuid.UUID          `json:"id"`
	ProductName    string             `json:"product_name"`
	ProductPrice   decimal.Decimal    `json:"product_price"`
	ImgURL         string             `json:"img_url,omitempty"`
	Description    string             `json:"description"`
	Amount         int                `json:"amount"`
	LastUpdateDate time.Time          `json:"last_update_date"`
	Items          []RecipeItemOutput `json:"items"`
	FinancialSummary
}

// RecipeItemVersionOutput is one frozen component inside a version snapshot.
type RecipeItemVersionOutput struct {
	IngredientName    string          `json:"ingredient_name"`
	IngredientID      *uuid.UUID      `json:"ingredient_id,omitempty"`
	SubProductID      *uuid.UUID      `json:"sub_product_id,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	Unit              string          `json:"unit"`
	UnitCostSnapshot  decimal.Decimal `json:"unit_cost_snapshot"`
	TotalCostSnapshot decimal.Decimal `json:"total_cost_snapshot"`
}

// RecipeVersionOutput is the read model of one immutable snapshot, with
// financials computed from the snapshot's own frozen figures, never from the
// live recipe.
type RecipeVersionOutput struct {
	ID                   uuid.UUID                 `json:"id"`
	VersionNumber        int                       `json:"version_number"`
	CreatedAt            time.Time                 `json:"created_at"`
	Description          string                    `json:"description"`
	Amount               int                       `json:"amount"`
	ProductNameSnapshot  string                    `json:"product_name_snapshot"`
	ProductPriceSnapshot decimal.Decimal           `json:"product_price_snapshot"`
	ActionType           string                    `json:"action_type"`
	Items                []RecipeItemVersionOutput `json:"items"`
	TotalCost            decimal.Decimal           `json:"total_cost"`
	Profit               decimal.Decimal           `json:"profit"`
	Margin               *decimal.Decimal          `json:"margin,omitempty"`
}

// RecipeUsecase is the versioning engine's API. Every mutating operation
// appends exactly one immutable version to the recipe's history inside the
// same transaction as the mutation itself.
type RecipeUsecase interface {
	// Insert creates a recipe with its product and items and appends version
	// #1 (CREATE) capturing the just-created state.
	Insert(ctx context.Context, input *RecipeInput) (*RecipeOutput, error)

	// Update snapshots the current state (UPDATE), then replaces the
	// recipe's product fields, description, amount and item list.
	Update(ctx context.Context, id uuid.UUID, input *RecipeInput) (*RecipeOutput, error)

	// Delete snapshots the current state (DELETE) and soft-deletes the
	// recipe. Deleting an already deleted recipe reports not-found.
	Delete(ctx context.Context, id uuid.UUID) error

	// RefreshPrices snapshots the current state (REFRESH), then re-resolves
	// every item's component and recomputes its frozen costs from the
	// component's live price.
	RefreshPrices(ctx context.Context, id uuid.UUID) (*RecipeOutput, error)

	// RestoreVersion snapshots the current state (RESTORE), then overwrites
	// the live recipe from the given version. Fails atomically when a
	// referenced component no longer exists.
	RestoreVersion(ctx context.Context, recipeID, versionID uuid.UUID) (*RecipeOutput, error)

	// FindByID returns a recipe with freshly computed financials. Deleted
	// recipes report not-found.
	FindByID(ctx context.Context, id uuid.UUID) (*RecipeOutput, error)

	// FindByClient lists the authenticated client's recipes.
	FindByClient(ctx context.Context) ([]*RecipeOutput, error)

	// FindVersions returns a recipe's history, most recent first. Works on
	// deleted recipes too.
	FindVersions(ctx context.Context, recipeID uuid.UUID) ([]*RecipeVersionOutput, error)

	// FindVersionByID returns one snapshot of the recipe's history.
	FindVersionByID(ctx context.Context, recipeID, versionID uuid.UUID) (*RecipeVersionOutput, error)
}
