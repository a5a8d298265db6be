package entity

import (
	"time"

	"costbook/internal/domain/costing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable good. When it is backed by a Recipe it can also be
// used as a sub-product inside other recipes, and its unit cost is derived
// from that recipe's composition. Product and Recipe share the same identity.
type Product struct {
	ID             uuid.UUID
	Name           string
	Price          decimal.Decimal // Sale price of one unit.
	ImgURL         string
	CreateDate     time.Time
	LastUpdateDate time.Time
	Recipe         *Recipe // Nil for products without a recipe behind them.
}

// UnitCost derives the production cost of one unit from the backing recipe.
// It is undefined for recipe-less products and for recipes with a
// non-positive portion amount.
func (p *Product) UnitCost() (decimal.Decimal, bool) {
	if p.Recipe == nil {
		return decimal.Zero, false
	}

	return costing.UnitCost(p.Recipe.TotalCost(), decimal.NewFromInt(int64(p.Recipe.Amount)))
}
