package postgres

import (
	"context"

	"costbook/internal/domain/entity"
	domainerrors "costbook/internal/domain/errors"
	"costbook/internal/domain/repository"
	"costbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID loads one product with its backing recipe and items, so the
// product's unit cost is computable without further round trips.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Items").
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Save persists the current state of a product.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save product")
	}

	return nil
}

// --- mappers ---

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:             product.ID,
		Name:           product.Name,
		Price:          product.Price,
		ImgURL:         product.ImgURL,
		CreateDate:     product.CreateDate,
		LastUpdateDate: product.LastUpdateDate,
	}
}

// toProductDomain maps a product row, linking in the backing recipe when it
// was preloaded. Only the recipe's own fields and item costs are carried: that
// is all a sub-product needs for unit-cost derivation.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:             productM.ID,
		Name:           productM.Name,
		Price:          productM.Price,
		ImgURL:         productM.ImgURL,
		CreateDate:     productM.CreateDate,
		LastUpdateDate: productM.LastUpdateDate,
	}

	if productM.Recipe != nil {
		recipe := &entity.Recipe{
			ID:             productM.Recipe.ProductID,
			Description:    productM.Recipe.Description,
			Amount:         productM.Recipe.Amount,
			ClientID:       productM.Recipe.ClientID,
			Deleted:        productM.Recipe.Deleted,
			LastUpdateDate: productM.Recipe.LastUpdateDate,
			Product:        product,
		}

		items := make([]*entity.RecipeItem, 0, len(productM.Recipe.Items))
		for i := range productM.Recipe.Items {
			items = append(items, toRecipeItemDomain(&productM.Recipe.Items[i]))
		}
		recipe.ReplaceItems(items)

		product.Recipe = recipe
	}

	return product
}
