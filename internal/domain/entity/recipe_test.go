package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func flourIngredient() *Ingredient {
	return &Ingredient{
		ID:              uuid.New(),
		Name:            "Flour",
		PriceCost:       dec("45"),
		QuantityPerUnit: dec("1000"),
		Unit:            UnitTypeGram,
		ClientID:        uuid.New(),
	}
}

func TestIngredient_UnitCost(t *testing.T) {
	t.Run("derived from package price and size", func(t *testing.T) {
		unitCost, ok := flourIngredient().UnitCost()

		require.True(t, ok)
		assert.True(t, dec("0.045").Equal(unitCost))
	})

	t.Run("undefined when the package size is zero", func(t *testing.T) {
		ingredient := flourIngredient()
		ingredient.QuantityPerUnit = decimal.Zero

		_, ok := ingredient.UnitCost()

		assert.False(t, ok)
	})
}

func TestRecipe_ItemOwnership(t *testing.T) {
	recipe := &Recipe{ID: uuid.New(), Amount: 1}
	first := &RecipeItem{ID: uuid.New(), Quantity: dec("2")}
	second := &RecipeItem{ID: uuid.New(), Quantity: dec("3")}

	recipe.AddItem(first)
	recipe.AddItem(second)

	require.Len(t, recipe.Items(), 2)
	assert.Same(t, recipe, first.Recipe())
	assert.Same(t, recipe, second.Recipe())

	recipe.RemoveItem(first)

	require.Len(t, recipe.Items(), 1)
	assert.Nil(t, first.Recipe())
	assert.Same(t, second, recipe.Items()[0])
}

func TestRecipe_ReplaceItems(t *testing.T) {
	recipe := &Recipe{ID: uuid.New(), Amount: 1}
	old := &RecipeItem{ID: uuid.New()}
	recipe.AddItem(old)

	replacement := &RecipeItem{ID: uuid.New()}
	recipe.ReplaceItems([]*RecipeItem{replacement})

	require.Len(t, recipe.Items(), 1)
	assert.Nil(t, old.Recipe())
	assert.Same(t, recipe, replacement.Recipe())
}

func TestRecipeItem_CalculateSnapshot(t *testing.T) {
	t.Run("freezes ingredient unit cost times quantity", func(t *testing.T) {
		item := &RecipeItem{
			Ingredient: flourIngredient(),
			Quantity:   dec("200"),
		}

		item.CalculateSnapshot()

		assert.True(t, dec("0.045").Equal(item.UnitCost))
		assert.True(t, dec("9").Equal(item.TotalCost))
	})

	t.Run("undefined component cost contributes zero", func(t *testing.T) {
		ingredient := flourIngredient()
		ingredient.QuantityPerUnit = decimal.Zero
		item := &RecipeItem{
			Ingredient: ingredient,
			Quantity:   dec("200"),
		}

		item.CalculateSnapshot()

		assert.True(t, item.UnitCost.IsZero())
		assert.True(t, item.TotalCost.IsZero())
	})
}

func TestProduct_UnitCost(t *testing.T) {
	t.Run("derived from the backing recipe", func(t *testing.T) {
		recipe := &Recipe{ID: uuid.New(), Amount: 4}
		item := &RecipeItem{Quantity: dec("1"), TotalCost: dec("10")}
		recipe.AddItem(item)
		product := &Product{ID: recipe.ID, Name: "Brownie", Recipe: recipe}

		unitCost, ok := product.UnitCost()

		require.True(t, ok)
		assert.True(t, dec("2.5").Equal(unitCost))
	})

	t.Run("undefined without a recipe", func(t *testing.T) {
		product := &Product{ID: uuid.New(), Name: "Napkin"}

		_, ok := product.UnitCost()

		assert.False(t, ok)
	})
}

func TestNewRecipeVersion(t *testing.T) {
	now := time.Now()
	ingredient := flourIngredient()
	product := &Product{ID: uuid.New(), Name: "Brownie", Price: dec("100")}
	recipe := &Recipe{
		ID:          product.ID,
		Product:     product,
		Description: "classic",
		Amount:      4,
		ClientID:    uuid.New(),
	}
	product.Recipe = recipe
	item := &RecipeItem{
		ID:         uuid.New(),
		Ingredient: ingredient,
		Quantity:   dec("200"),
	}
	item.CalculateSnapshot()
	recipe.AddItem(item)

	version := NewRecipeVersion(recipe, ActionUpdate, 3, now)

	assert.Equal(t, recipe.ID, version.RecipeID)
	assert.Equal(t, 3, version.VersionNumber)
	assert.Equal(t, ActionUpdate, version.ActionType)
	assert.Equal(t, "classic", version.Description)
	assert.Equal(t, "Brownie", version.ProductNameSnapshot)
	assert.True(t, dec("100").Equal(version.ProductPriceSnapshot))

	require.Len(t, version.Items, 1)
	snapshot := version.Items[0]
	assert.Equal(t, "Flour", snapshot.IngredientName)
	assert.Equal(t, UnitTypeGram, snapshot.Unit)
	require.NotNil(t, snapshot.IngredientID)
	assert.Equal(t, ingredient.ID, *snapshot.IngredientID)
	assert.True(t, dec("0.045").Equal(snapshot.UnitCostSnapshot))
	assert.True(t, dec("9").Equal(snapshot.TotalCostSnapshot))
}

func TestNewRecipeVersion_DanglingComponentKeepsIDs(t *testing.T) {
	product := &Product{ID: uuid.New(), Name: "Brownie", Price: dec("100")}
	recipe := &Recipe{ID: product.ID, Product: product, Amount: 1}
	danglingID := uuid.New()
	item := &RecipeItem{
		ID:           uuid.New(),
		IngredientID: &danglingID,
		Quantity:     dec("5"),
		UnitCost:     dec("2"),
		TotalCost:    dec("10"),
	}
	recipe.AddItem(item)

	version := NewRecipeVersion(recipe, ActionRestore, 7, time.Now())

	require.Len(t, version.Items, 1)
	snapshot := version.Items[0]
	require.NotNil(t, snapshot.IngredientID)
	assert.Equal(t, danglingID, *snapshot.IngredientID)
	assert.Nil(t, snapshot.SubProductID)
	assert.True(t, dec("2").Equal(snapshot.UnitCostSnapshot))
	assert.True(t, dec("10").Equal(snapshot.TotalCostSnapshot))
}
