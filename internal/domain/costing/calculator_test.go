package costing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUnitCost(t *testing.T) {
	t.Run("divides price by purchased quantity", func(t *testing.T) {
		unitCost, ok := UnitCost(dec("45"), dec("1000"))

		require.True(t, ok)
		assert.True(t, dec("0.045").Equal(unitCost))
	})

	t.Run("keeps six decimals of precision", func(t *testing.T) {
		unitCost, ok := UnitCost(dec("10"), dec("3"))

		require.True(t, ok)
		assert.True(t, dec("3.333333").Equal(unitCost))
	})

	t.Run("undefined for zero quantity", func(t *testing.T) {
		_, ok := UnitCost(dec("45"), decimal.Zero)

		assert.False(t, ok)
	})

	t.Run("undefined for negative quantity", func(t *testing.T) {
		_, ok := UnitCost(dec("45"), dec("-1"))

		assert.False(t, ok)
	})
}

func TestItemTotalCost(t *testing.T) {
	total := ItemTotalCost(dec("0.045"), dec("200"))

	assert.True(t, dec("9").Equal(total))
}

func TestTotalCost(t *testing.T) {
	t.Run("sums and rounds to money scale", func(t *testing.T) {
		total := TotalCost([]decimal.Decimal{dec("9.005"), dec("1.001")})

		assert.True(t, dec("10.01").Equal(total))
	})

	t.Run("empty list is zero", func(t *testing.T) {
		assert.True(t, decimal.Zero.Equal(TotalCost(nil)))
	})
}

func TestCostPerUnit(t *testing.T) {
	t.Run("divides total over portions", func(t *testing.T) {
		perUnit, ok := CostPerUnit(dec("10"), 4)

		require.True(t, ok)
		assert.True(t, dec("2.50").Equal(perUnit))
	})

	t.Run("rounds half up", func(t *testing.T) {
		perUnit, ok := CostPerUnit(dec("10"), 3)

		require.True(t, ok)
		assert.True(t, dec("3.33").Equal(perUnit))
	})

	t.Run("undefined for zero portions", func(t *testing.T) {
		_, ok := CostPerUnit(dec("10"), 0)

		assert.False(t, ok)
	})
}

func TestProfit(t *testing.T) {
	assert.True(t, dec("90.00").Equal(Profit(dec("100"), dec("10"))))
	assert.True(t, dec("-5.00").Equal(Profit(dec("5"), dec("10"))))
}

func TestMargin(t *testing.T) {
	t.Run("profit as a percentage of the sale price", func(t *testing.T) {
		margin, ok := Margin(dec("90"), dec("100"))

		require.True(t, ok)
		assert.True(t, dec("90.00").Equal(margin))
	})

	t.Run("intermediate four decimal division avoids bias", func(t *testing.T) {
		margin, ok := Margin(dec("1"), dec("3"))

		require.True(t, ok)
		assert.True(t, dec("33.33").Equal(margin))
	})

	t.Run("negative profit yields negative margin", func(t *testing.T) {
		margin, ok := Margin(dec("-5"), dec("10"))

		require.True(t, ok)
		assert.True(t, dec("-50.00").Equal(margin))
	})

	t.Run("undefined for zero sale price", func(t *testing.T) {
		_, ok := Margin(dec("90"), decimal.Zero)

		assert.False(t, ok)
	})
}
