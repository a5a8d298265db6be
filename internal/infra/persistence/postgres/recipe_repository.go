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

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// recipePreloads loads the full aggregate eagerly: the product, every item
// with its resolved ingredient, and each sub-product deep enough that its
// unit cost is computable from its own recipe items.
func (repo *recipeRepository) recipePreloads(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Items.Ingredient").
		Preload("Items.SubProduct").
		Preload("Items.SubProduct.Recipe").
		Preload("Items.SubProduct.Recipe.Items")
}

// Create persists a new recipe together with its product and items.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferentialIntegrity.WrapMessage("invalid component reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	return nil
}

// Save persists the current state of an existing recipe. The item list is
// replaced wholesale: existing rows go away, the aggregate's rows come in.
func (repo *recipeRepository) Save(ctx context.Context, recipe *entity.Recipe) error {
	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipe.ID).
		Delete(&model.RecipeItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear recipe items")
	}

	recipeM := fromRecipeDomain(recipe)
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferentialIntegrity.WrapMessage("invalid component reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save recipe")
	}

	return nil
}

// FindByID loads one recipe aggregate, soft-deleted ones included; the
// not-found policy for deleted recipes lives in the engine.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	err := repo.recipePreloads(ctx).
		Where("product_id = ?", id).
		First(&recipeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByClient loads a client's live recipes, newest first.
func (repo *recipeRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	err := repo.recipePreloads(ctx).
		Where("client_id = ? AND deleted = ?", clientID, false).
		Order("last_update_date DESC").
		Find(&recipeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by client")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, toRecipeDomain(&recipeMs[i]))
	}

	return recipes, nil
}

// CreateVersion appends an immutable snapshot with its item rows.
func (repo *recipeRepository) CreateVersion(ctx context.Context, version *entity.RecipeVersion) error {
	versionM := fromRecipeVersionDomain(version)

	if err := repo.db.WithContext(ctx).Create(versionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Concurrent writers raced on the same version number; the
			// transaction retries at a higher level or surfaces the conflict.
			return domainerrors.ErrTransactionFailed.WrapMessage("version number conflict")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe version")
	}

	return nil
}

// CountVersions reports how many versions a recipe has.
func (repo *recipeRepository) CountVersions(ctx context.Context, recipeID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RecipeVersionModel{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count recipe versions")
	}

	return int(count), nil
}

// FindVersions loads a recipe's history ordered by version number descending.
func (repo *recipeRepository) FindVersions(ctx context.Context, recipeID uuid.UUID) ([]*entity.RecipeVersion, error) {
	var versionMs []model.RecipeVersionModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("recipe_id = ?", recipeID).
		Order("version_number DESC").
		Find(&versionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipe versions")
	}

	versions := make([]*entity.RecipeVersion, 0, len(versionMs))
	for i := range versionMs {
		versions = append(versions, toRecipeVersionDomain(&versionMs[i]))
	}

	return versions, nil
}

// FindVersionByID loads one version, scoped to the given recipe so a version
// id can never be read through another recipe.
func (repo *recipeRepository) FindVersionByID(ctx context.Context, versionID, recipeID uuid.UUID) (*entity.RecipeVersion, error) {
	var versionM model.RecipeVersionModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND recipe_id = ?", versionID, recipeID).
		First(&versionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVersionNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe version by id")
	}

	return toRecipeVersionDomain(&versionM), nil
}

// --- mappers ---

func fromRecipeDomain(recipe *entity.Recipe) *model.RecipeModel {
	recipeM := &model.RecipeModel{
		ProductID:      recipe.ID,
		Description:    recipe.Description,
		Amount:         recipe.Amount,
		ClientID:       recipe.ClientID,
		Deleted:        recipe.Deleted,
		LastUpdateDate: recipe.LastUpdateDate,
	}

	if recipe.Product != nil {
		recipeM.Product = fromProductDomain(recipe.Product)
	}

	items := recipe.Items()
	recipeM.Items = make([]model.RecipeItemModel, 0, len(items))
	for _, item := range items {
		recipeM.Items = append(recipeM.Items, model.RecipeItemModel{
			ID:           item.ID,
			RecipeID:     recipe.ID,
			IngredientID: item.IngredientID,
			SubProductID: item.SubProductID,
			Quantity:     item.Quantity,
			UnitCost:     item.UnitCost,
			TotalCost:    item.TotalCost,
		})
	}

	return recipeM
}

func toRecipeDomain(recipeM *model.RecipeModel) *entity.Recipe {
	recipe := &entity.Recipe{
		ID:             recipeM.ProductID,
		Description:    recipeM.Description,
		Amount:         recipeM.Amount,
		ClientID:       recipeM.ClientID,
		Deleted:        recipeM.Deleted,
		LastUpdateDate: recipeM.LastUpdateDate,
	}

	if recipeM.Product != nil {
		recipe.Product = toProductDomain(recipeM.Product)
		recipe.Product.Recipe = recipe
	}

	items := make([]*entity.RecipeItem, 0, len(recipeM.Items))
	for i := range recipeM.Items {
		items = append(items, toRecipeItemDomain(&recipeM.Items[i]))
	}
	recipe.ReplaceItems(items)

	return recipe
}

func toRecipeItemDomain(itemM *model.RecipeItemModel) *entity.RecipeItem {
	item := &entity.RecipeItem{
		ID:           itemM.ID,
		IngredientID: itemM.IngredientID,
		SubProductID: itemM.SubProductID,
		Quantity:     itemM.Quantity,
		UnitCost:     itemM.UnitCost,
		TotalCost:    itemM.TotalCost,
	}

	if itemM.Ingredient != nil {
		item.Ingredient = toIngredientDomain(itemM.Ingredient)
	}
	if itemM.SubProduct != nil {
		item.SubProduct = toProductDomain(itemM.SubProduct)
	}

	return item
}

func fromRecipeVersionDomain(version *entity.RecipeVersion) *model.RecipeVersionModel {
	versionM := &model.RecipeVersionModel{
		ID:                   version.ID,
		RecipeID:             version.RecipeID,
		VersionNumber:        version.VersionNumber,
		CreatedAt:            version.CreatedAt,
		Description:          version.Description,
		Amount:               version.Amount,
		ProductNameSnapshot:  version.ProductNameSnapshot,
		ProductPriceSnapshot: version.ProductPriceSnapshot,
		ActionType:           string(version.ActionType),
	}

	versionM.Items = make([]model.RecipeItemVersionModel, 0, len(version.Items))
	for _, itemVersion := range version.Items {
		versionM.Items = append(versionM.Items, model.RecipeItemVersionModel{
			ID:                itemVersion.ID,
			RecipeVersionID:   version.ID,
			IngredientName:    itemVersion.IngredientName,
			IngredientID:      itemVersion.IngredientID,
			SubProductID:      itemVersion.SubProductID,
			Quantity:          itemVersion.Quantity,
			Unit:              string(itemVersion.Unit),
			UnitCostSnapshot:  itemVersion.UnitCostSnapshot,
			TotalCostSnapshot: itemVersion.TotalCostSnapshot,
		})
	}

	return versionM
}

func toRecipeVersionDomain(versionM *model.RecipeVersionModel) *entity.RecipeVersion {
	version := &entity.RecipeVersion{
		ID:                   versionM.ID,
		RecipeID:             versionM.RecipeID,
		VersionNumber:        versionM.VersionNumber,
		CreatedAt:            versionM.CreatedAt,
		Description:          versionM.Description,
		Amount:               versionM.Amount,
		ProductNameSnapshot:  versionM.ProductNameSnapshot,
		ProductPriceSnapshot: versionM.ProductPriceSnapshot,
		ActionType:           entity.VersionActionType(versionM.ActionType),
	}

	version.Items = make([]*entity.RecipeItemVersion, 0, len(versionM.Items))
	for i := range versionM.Items {
		itemM := &versionM.Items[i]
		version.Items = append(version.Items, &entity.RecipeItemVersion{
			ID:                itemM.ID,
			IngredientName:    itemM.IngredientName,
			IngredientID:      itemM.IngredientID,
			SubProductID:      itemM.SubProductID,
			Quantity:          itemM.Quantity,
			Unit:              entity.UnitType(itemM.Unit),
			UnitCostSnapshot:  itemM.UnitCostSnapshot,
			TotalCostSnapshot: itemM.TotalCostSnapshot,
		})
	}

	return version
}
