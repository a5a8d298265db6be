package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. A recipe-backed product shares
// its primary key with the recipe row.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Price          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ImgURL         string          `gorm:"column:img_url;type:varchar(500)"`
	CreateDate     time.Time
	LastUpdateDate time.Time

	Recipe *RecipeModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
