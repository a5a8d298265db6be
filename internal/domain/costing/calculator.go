// Package costing holds the pure cost arithmetic of the domain. Every
// function is stateless and side-effect free; undefined results are reported
// through a boolean instead of an error so callers can apply their own
// policy (usually: contribute zero, or leave a DTO field null).
//
// Money figures are rounded to 2 decimal places, half up. The margin keeps 4
// decimal places through the intermediate division to avoid double-rounding
// bias before the final 2-decimal rounding.
package costing

import "github.com/shopspring/decimal"

const (
	// MoneyScale is the scale of every money figure crossing the API boundary.
	MoneyScale = 2

	// unitCostScale keeps per-unit precision ahead of money rounding.
	unitCostScale = 6

	// marginScale is the intermediate scale of the margin division.
	marginScale = 4
)

var hundred = decimal.NewFromInt(100)

// UnitCost derives the cost of a single unit from the purchase price and the
// purchased quantity. Undefined (ok=false) when quantityPerUnit is not
// positive; an undefined unit cost is not a zero price.
func UnitCost(priceCost, quantityPerUnit decimal.Decimal) (decimal.Decimal, bool) {
	if !quantityPerUnit.IsPositive() {
		return decimal.Zero, false
	}

	return priceCost.DivRound(quantityPerUnit, unitCostScale), true
}

// ItemTotalCost is the frozen total of one recipe item.
func ItemTotalCost(unitCost, quantity decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(quantity)
}

// TotalCost sums frozen item totals into the recipe's money total.
func TotalCost(itemTotals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, itemTotal := range itemTotals {
		total = total.Add(itemTotal)
	}

	return total.Round(MoneyScale)
}

// CostPerUnit divides the recipe total over the produced portions. Undefined
// when amount is not positive.
func CostPerUnit(totalCost decimal.Decimal, amount int) (decimal.Decimal, bool) {
	if amount <= 0 {
		return decimal.Zero, false
	}

	return totalCost.DivRound(decimal.NewFromInt(int64(amount)), MoneyScale), true
}

// Profit is the sale price minus the production total.
func Profit(salePrice, totalCost decimal.Decimal) decimal.Decimal {
	return salePrice.Sub(totalCost).Round(MoneyScale)
}

// Margin expresses profit as a percentage of the sale price. Undefined when
// the sale price is not positive.
func Margin(profit, salePrice decimal.Decimal) (decimal.Decimal, bool) {
	if !salePrice.IsPositive() {
		return decimal.Zero, false
	}

	return profit.DivRound(salePrice, marginScale).Mul(hundred).Round(MoneyScale), true
}
