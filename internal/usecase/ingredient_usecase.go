package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientInput carries the writable fields of an ingredient.
type IngredientInput struct {
	Name            string          `json:"name" validate:"required"`
	Brand           string          `json:"brand"`
	PriceCost       decimal.Decimal `json:"price_cost"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	Unit            string          `json:"unit" validate:"required"`
	SupplierID      *uuid.UUID      `json:"supplier_id,omitempty"`
}

// IngredientOutput is the read model of an ingredient. UnitCost is null when
// undefined (QuantityPerUnit not positive), never zero.
type IngredientOutput struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Brand           string           `json:"brand"`
	PriceCost       decimal.Decimal  `json:"price_cost"`
	QuantityPerUnit decimal.Decimal  `json:"quantity_per_unit"`
	Unit            string           `json:"unit"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	ImgURL          string           `json:"img_url,omitempty"`
	SupplierID      *uuid.UUID       `json:"supplier_id,omitempty"`
	CreateDate      time.Time        `json:"create_date"`
	LastUpdateDate  time.Time        `json:"last_update_date"`
}

// IngredientUsecase manages the authenticated client's ingredients.
type IngredientUsecase interface {
	// Insert creates an ingredient owned by the authenticated client.
	Insert(ctx context.Context, input *IngredientInput) (*IngredientOutput, error)

	// Update replaces an ingredient's writable fields.
	Update(ctx context.Context, id uuid.UUID, input *IngredientInput) (*IngredientOutput, error)

	// Delete removes an ingredient; recipes referencing it keep their frozen
	// costs, but the delete fails when the persistence layer still holds
	// references.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns one ingredient.
	FindByID(ctx context.Context, id uuid.UUID) (*IngredientOutput, error)

	// FindByClient lists the authenticated client's ingredients.
	FindByClient(ctx context.Context) ([]*IngredientOutput, error)

	// UploadImage stores an image and persists its URL on the ingredient.
	UploadImage(ctx context.Context, id uuid.UUID, data []byte, contentType string) (*IngredientOutput, error)
}
