package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientModel mirrors the 'ingredients' table. The per-unit cost is
// derived in the domain, never stored.
type IngredientModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Brand           string          `gorm:"type:varchar(100)"`
	PriceCost       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	QuantityPerUnit decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	Unit            string          `gorm:"type:varchar(20);not null"`
	ImgURL          string          `gorm:"column:img_url;type:varchar(500)"`
	SupplierID      *uuid.UUID      `gorm:"type:uuid;index"`
	ClientID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreateDate      time.Time
	LastUpdateDate  time.Time

	Supplier *SupplierModel `gorm:"foreignKey:SupplierID"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}
