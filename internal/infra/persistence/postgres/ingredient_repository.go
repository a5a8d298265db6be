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

// ingredientRepository implements the repository.IngredientRepository interface using GORM.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

// Create persists a new ingredient.
func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	if err := repo.db.WithContext(ctx).Create(ingredientM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSupplierNotFound.WrapMessage("invalid supplier reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required ingredient field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ingredient")
	}

	return nil
}

// Save persists the current state of an existing ingredient.
func (repo *ingredientRepository) Save(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	if err := repo.db.WithContext(ctx).Save(ingredientM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSupplierNotFound.WrapMessage("invalid supplier reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save ingredient")
	}

	return nil
}

// FindByID loads one ingredient.
func (repo *ingredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ingredientM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by id")
	}

	return toIngredientDomain(&ingredientM), nil
}

// FindByClient loads all ingredients owned by a client, by name.
func (repo *ingredientRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Ingredient, error) {
	var ingredientMs []model.IngredientModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&ingredientMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ingredients by client")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientMs))
	for i := range ingredientMs {
		ingredients = append(ingredients, toIngredientDomain(&ingredientMs[i]))
	}

	return ingredients, nil
}

// Delete removes an ingredient. The foreign key on recipe_items makes the
// delete fail while recipes still reference it; frozen snapshots in the
// version tables carry no foreign key and survive.
func (repo *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.IngredientModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferentialIntegrity.WrapMessage("ingredient is still used by recipes")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ingredient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// --- mappers ---

func fromIngredientDomain(ingredient *entity.Ingredient) *model.IngredientModel {
	return &model.IngredientModel{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		Brand:           ingredient.Brand,
		PriceCost:       ingredient.PriceCost,
		QuantityPerUnit: ingredient.QuantityPerUnit,
		Unit:            string(ingredient.Unit),
		ImgURL:          ingredient.ImgURL,
		SupplierID:      ingredient.SupplierID,
		ClientID:        ingredient.ClientID,
		CreateDate:      ingredient.CreateDate,
		LastUpdateDate:  ingredient.LastUpdateDate,
	}
}

func toIngredientDomain(ingredientM *model.IngredientModel) *entity.Ingredient {
	return &entity.Ingredient{
		ID:              ingredientM.ID,
		Name:            ingredientM.Name,
		Brand:           ingredientM.Brand,
		PriceCost:       ingredientM.PriceCost,
		QuantityPerUnit: ingredientM.QuantityPerUnit,
		Unit:            entity.UnitType(ingredientM.Unit),
		ImgURL:          ingredientM.ImgURL,
		SupplierID:      ingredientM.SupplierID,
		ClientID:        ingredientM.ClientID,
		CreateDate:      ingredientM.CreateDate,
		LastUpdateDate:  ingredientM.LastUpdateDate,
	}
}
