package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeModel mirrors the 'recipes' table. The primary key is the backing
// product's id; recipes are soft-deleted via the Deleted flag so the version
// history chained to them stays resolvable.
type RecipeModel struct {
	ProductID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Description    string    `gorm:"type:text"`
	Amount         int       `gorm:"not null"`
	ClientID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Deleted        bool      `gorm:"not null;default:false"`
	LastUpdateDate time.Time

	Product *ProductModel     `gorm:"foreignKey:ProductID;references:ID"`
	Items   []RecipeItemModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeItemModel mirrors the 'recipe_items' table. Exactly one of
// IngredientID and SubProductID is set; the frozen costs change only when the
// engine recomputes them.
type RecipeItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	RecipeID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	IngredientID *uuid.UUID      `gorm:"type:uuid;index"`
	SubProductID *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity     decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	UnitCost     decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	TotalCost    decimal.Decimal `gorm:"type:numeric(16,4);not null"`

	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID"`
	SubProduct *ProductModel    `gorm:"foreignKey:SubProductID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeItemModel) TableName() string {
	return "recipe_items"
}
