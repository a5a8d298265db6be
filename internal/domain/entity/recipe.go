package entity

import (
	"time"

	"costbook/internal/domain/costing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe is the mutable aggregate root of the costing domain. It shares its
// identity with the Product it produces, owns an ordered list of items and
// carries a soft-delete flag instead of ever being physically removed, so the
// version history chained to it stays resolvable.
type Recipe struct {
	ID             uuid.UUID // Same value as Product.ID.
	Product        *Product
	Description    string
	Amount         int // Portions produced by one execution of the recipe.
	ClientID       uuid.UUID
	Deleted        bool
	LastUpdateDate time.Time

	items []*RecipeItem
}

// RecipeItem ties a recipe to exactly one ingredient or one sub-product and
// freezes the cost that component had when the item was last (re)computed.
// The frozen figures only change through CalculateSnapshot, never lazily.
type RecipeItem struct {
	ID           uuid.UUID
	IngredientID *uuid.UUID
	SubProductID *uuid.UUID
	Ingredient   *Ingredient // Resolved reference, loaded explicitly.
	SubProduct   *Product    // Resolved reference, loaded explicitly.
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal // Frozen at snapshot time.
	TotalCost    decimal.Decimal // Frozen; always UnitCost * Quantity.

	recipe *Recipe
}

// Recipe returns the owning aggregate. It is nil only for items that have not
// been attached yet.
func (it *RecipeItem) Recipe() *Recipe {
	return it.recipe
}

// CalculateSnapshot re-derives the frozen unit and total cost from the
// currently resolved component. A component with an undefined unit cost
// contributes zero so the recipe stays computable.
func (it *RecipeItem) CalculateSnapshot() {
	unitCost, ok := it.componentUnitCost()
	if !ok {
		unitCost = decimal.Zero
	}

	it.UnitCost = unitCost
	it.TotalCost = costing.ItemTotalCost(unitCost, it.Quantity)
}

// componentUnitCost resolves the live unit cost of whichever component the
// item references.
func (it *RecipeItem) componentUnitCost() (decimal.Decimal, bool) {
	if it.Ingredient != nil {
		return it.Ingredient.UnitCost()
	}
	if it.SubProduct != nil {
		return it.SubProduct.UnitCost()
	}

	return decimal.Zero, false
}

// Items returns the ordered item list. Callers must not mutate membership
// directly; AddItem/RemoveItem/ReplaceItems are the only paths that keep the
// item back-references consistent.
func (r *Recipe) Items() []*RecipeItem {
	return r.items
}

// AddItem appends an item and claims ownership of it.
func (r *Recipe) AddItem(item *RecipeItem) {
	item.recipe = r
	r.items = append(r.items, item)
}

// RemoveItem detaches an item from the aggregate.
func (r *Recipe) RemoveItem(item *RecipeItem) {
	for i, existing := range r.items {
		if existing == item {
			r.items = append(r.items[:i], r.items[i+1:]...)
			item.recipe = nil

			return
		}
	}
}

// ReplaceItems swaps the whole item list, reclaiming every back-reference.
// The engine uses this for the replace-on-update semantics of insert, update
// and restore.
func (r *Recipe) ReplaceItems(items []*RecipeItem) {
	for _, item := range r.items {
		item.recipe = nil
	}

	r.items = make([]*RecipeItem, 0, len(items))
	for _, item := range items {
		r.AddItem(item)
	}
}

// TotalCost sums the frozen item totals without any rounding. The DTO-facing
// financial summary applies money rounding at the boundary.
func (r *Recipe) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.items {
		total = total.Add(item.TotalCost)
	}

	return total
}

// CostPerUnit derives the production cost of one portion; undefined when the
// portion amount is not positive.
func (r *Recipe) CostPerUnit() (decimal.Decimal, bool) {
	return costing.UnitCost(r.TotalCost(), decimal.NewFromInt(int64(r.Amount)))
}
