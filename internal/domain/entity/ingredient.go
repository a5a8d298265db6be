package entity

import (
	"time"

	"costbook/internal/domain/costing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ingredient is a purchasable raw material. PriceCost is what the client paid
// for QuantityPerUnit of the ingredient, so the cost of a single unit is
// derived, not stored.
type Ingredient struct {
	ID              uuid.UUID
	Name            string
	Brand           string
	PriceCost       decimal.Decimal // Price paid for one purchased package.
	QuantityPerUnit decimal.Decimal // Size of that package, in Unit.
	Unit            UnitType
	ImgURL          string
	SupplierID      *uuid.UUID // Optional supplier reference.
	ClientID        uuid.UUID  // Owning client account.
	CreateDate      time.Time
	LastUpdateDate  time.Time
}

// UnitCost derives the cost of a single measurement unit. The second return
// is false when QuantityPerUnit is zero or negative: the unit cost is
// undefined then, and callers must not treat it as a zero price.
func (i *Ingredient) UnitCost() (decimal.Decimal, bool) {
	return costing.UnitCost(i.PriceCost, i.QuantityPerUnit)
}
