package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeVersionModel mirrors the 'recipe_versions' table. Rows are
// append-only; nothing ever updates or deletes them individually.
type RecipeVersionModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	RecipeID             uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_recipe_version_number"`
	VersionNumber        int       `gorm:"not null;uniqueIndex:idx_recipe_version_number"`
	CreatedAt            time.Time
	Description          string          `gorm:"type:text"`
	Amount               int             `gorm:"not null"`
	ProductNameSnapshot  string          `gorm:"type:varchar(100);not null"`
	ProductPriceSnapshot decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ActionType           string          `gorm:"type:varchar(20);not null"`

	Items []RecipeItemVersionModel `gorm:"foreignKey:RecipeVersionID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeVersionModel) TableName() string {
	return "recipe_versions"
}

// RecipeItemVersionModel mirrors the 'recipe_item_versions' table. The
// component ids carry no foreign keys on purpose: a snapshot must outlive the
// ingredient or product it once referenced.
type RecipeItemVersionModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key"`
	RecipeVersionID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	IngredientName    string          `gorm:"type:varchar(100)"`
	IngredientID      *uuid.UUID      `gorm:"type:uuid"`
	SubProductID      *uuid.UUID      `gorm:"type:uuid"`
	Quantity          decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	Unit              string          `gorm:"type:varchar(20)"`
	UnitCostSnapshot  decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	TotalCostSnapshot decimal.Decimal `gorm:"type:numeric(16,4);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeItemVersionModel) TableName() string {
	return "recipe_item_versions"
}
