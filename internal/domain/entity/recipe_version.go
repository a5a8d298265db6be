package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeVersion is an immutable point-in-time snapshot of a recipe's
// composition and cost. Versions are append-only: they are written once by
// the versioning engine and never mutated or individually deleted, so version
// numbers assigned as count+1 stay strictly increasing.
type RecipeVersion struct {
	ID                   uuid.UUID
	RecipeID             uuid.UUID
	VersionNumber        int // 1-based, strictly increasing per recipe.
	CreatedAt            time.Time
	Description          string
	Amount               int
	ProductNameSnapshot  string
	ProductPriceSnapshot decimal.Decimal
	ActionType           VersionActionType
	Items                []*RecipeItemVersion
}

// RecipeItemVersion freezes one recipe item inside a version. The component
// name is denormalized so the snapshot survives later renames or deletions of
// the referenced ingredient or sub-product; the id references may dangle.
type RecipeItemVersion struct {
	ID                uuid.UUID
	IngredientName    string
	IngredientID      *uuid.UUID
	SubProductID      *uuid.UUID
	Quantity          decimal.Decimal
	Unit              UnitType
	UnitCostSnapshot  decimal.Decimal
	TotalCostSnapshot decimal.Decimal
}

// NewRecipeVersion captures the recipe's current state as a snapshot with the
// given action type and version number. The snapshot copies every
// cost-relevant field by value; nothing in it aliases the live aggregate.
func NewRecipeVersion(recipe *Recipe, action VersionActionType, versionNumber int, now time.Time) *RecipeVersion {
	version := &RecipeVersion{
		ID:                   uuid.New(),
		RecipeID:             recipe.ID,
		VersionNumber:        versionNumber,
		CreatedAt:            now,
		Description:          recipe.Description,
		Amount:               recipe.Amount,
		ProductNameSnapshot:  recipe.Product.Name,
		ProductPriceSnapshot: recipe.Product.Price,
		ActionType:           action,
	}

	for _, item := range recipe.Items() {
		version.Items = append(version.Items, snapshotItem(item))
	}

	return version
}

func snapshotItem(item *RecipeItem) *RecipeItemVersion {
	itemVersion := &RecipeItemVersion{
		ID:                uuid.New(),
		Quantity:          item.Quantity,
		Unit:              UnitTypeUnit,
		UnitCostSnapshot:  item.UnitCost,
		TotalCostSnapshot: item.TotalCost,
	}

	switch {
	case item.Ingredient != nil:
		itemVersion.IngredientName = item.Ingredient.Name
		itemVersion.Unit = item.Ingredient.Unit
		id := item.Ingredient.ID
		itemVersion.IngredientID = &id
	case item.SubProduct != nil:
		itemVersion.IngredientName = item.SubProduct.Name
		id := item.SubProduct.ID
		itemVersion.SubProductID = &id
	default:
		// Restored items may dangle when their component was deleted later;
		// carry the ids verbatim so the history stays faithful.
		itemVersion.IngredientID = item.IngredientID
		itemVersion.SubProductID = item.SubProductID
	}

	return itemVersion
}
