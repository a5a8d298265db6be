// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "costbook/internal/delivery/context"
	"costbook/internal/domain/costing"
	"costbook/internal/domain/entity"
	domainerrors "costbook/internal/domain/errors"
	"costbook/internal/domain/repository"
	"costbook/internal/domain/service"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// recipeService is the versioning engine: it orchestrates every recipe
// mutation, appending one immutable snapshot per operation inside the same
// transaction as the mutation itself.
type recipeService struct {
	txManager      repository.TransactionManager
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	productRepo    repository.ProductRepository
	authorizer     service.Authorizer
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RecipeRepo     repository.RecipeRepository
	IngredientRepo repository.IngredientRepository
	ProductRepo    repository.ProductRepository
	Authorizer     service.Authorizer
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:      params.TxManager,
		recipeRepo:     params.RecipeRepo,
		ingredientRepo: params.IngredientRepo,
		productRepo:    params.ProductRepo,
		authorizer:     params.Authorizer,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

// Insert creates the recipe, its product and items, then appends version #1
// with action CREATE capturing the just-created state.
func (s *recipeService) Insert(ctx context.Context, input *usecase.RecipeInput) (*usecase.RecipeOutput, error) {
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	principal, err := s.authorizer.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	var out *usecase.RecipeOutput
	var versionNumber int
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		now := time.Now()
		productID := uuid.New()
		product := &entity.Product{
			ID:             productID,
			Name:           input.ProductName,
			Price:          input.ProductPrice,
			ImgURL:         input.ImgURL,
			CreateDate:     now,
			LastUpdateDate: now,
		}
		recipe := &entity.Recipe{
			ID:             productID, // identity shared with the product
			Product:        product,
			Description:    input.Description,
			Amount:         input.Amount,
			ClientID:       principal.ID,
			LastUpdateDate: now,
		}
		product.Recipe = recipe

		items, err := s.buildItems(ctx, repoFactory, input.Items)
		if err != nil {
			return err
		}
		recipe.ReplaceItems(items)

		if err := recipeRepo.Create(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to create recipe")
		}

		versionNumber, err = s.appendVersion(ctx, recipeRepo, recipe, entity.ActionCreate)
		if err != nil {
			return err
		}

		out = toRecipeOutput(recipe)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, out.ID, principal.ID, entity.ActionCreate, versionNumber)

	return out, nil
}

// Update snapshots the pre-update state, then applies the incoming data:
// product name/price, description, amount and a wholesale item-list rebuild
// with freshly frozen costs.
func (s *recipeService) Update(ctx context.Context, id uuid.UUID, input *usecase.RecipeInput) (*usecase.RecipeOutput, error) {
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	var out *usecase.RecipeOutput
	var clientID uuid.UUID
	var versionNumber int
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		recipe, err := s.loadActiveRecipe(ctx, recipeRepo, id)
		if err != nil {
			return err
		}
		if err := s.authorizer.ValidateSelfOrAdmin(ctx, recipe.ClientID); err != nil {
			return err
		}
		clientID = recipe.ClientID

		// Snapshot BEFORE applying any change, so the version captures the
		// state being replaced.
		versionNumber, err = s.appendVersion(ctx, recipeRepo, recipe, entity.ActionUpdate)
		if err != nil {
			return err
		}

		now := time.Now()
		recipe.Product.Name = input.ProductName
		recipe.Product.Price = input.ProductPrice
		if input.ImgURL != "" {
			recipe.Product.ImgURL = input.ImgURL
		}
		recipe.Product.LastUpdateDate = now
		recipe.Description = input.Description
		recipe.Amount = input.Amount
		recipe.LastUpdateDate = now

		items, err := s.buildItems(ctx, repoFactory, input.Items)
		if err != nil {
			return err
		}
		recipe.ReplaceItems(items)

		if err := recipeRepo.Save(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to save recipe")
		}

		out = toRecipeOutput(recipe)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, id, clientID, entity.ActionUpdate, versionNumber)

	return out, nil
}

// Delete snapshots the current state and flips the soft-delete flag. The
// recipe, its items and its versions stay in storage.
func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	var clientID uuid.UUID
	var versionNumber int
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		recipe, err := s.loadActiveRecipe(ctx, recipeRepo, id)
		if err != nil {
			return err
		}
		if err := s.authorizer.ValidateSelfOrAdmin(ctx, recipe.ClientID); err != nil {
			return err
		}
		clientID = recipe.ClientID

		versionNumber, err = s.appendVersion(ctx, recipeRepo, recipe, entity.ActionDelete)
		if err != nil {
			return err
		}

		recipe.Deleted = true
		recipe.LastUpdateDate = time.Now()

		if err := recipeRepo.Save(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to save recipe")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.publishEvent(ctx, id, clientID, entity.ActionDelete, versionNumber)

	return nil
}

// RefreshPrices snapshots the current state, then re-pulls the live cost of
// every referenced component into the items' frozen figures. Quantities and
// references stay untouched.
func (s *recipeService) RefreshPrices(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error) {
	var out *usecase.RecipeOutput
	var clientID uuid.UUID
	var versionNumber int
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		recipe, err := s.loadActiveRecipe(ctx, recipeRepo, id)
		if err != nil {
			return err
		}
		if err := s.authorizer.ValidateSelfOrAdmin(ctx, recipe.ClientID); err != nil {
			return err
		}
		clientID = recipe.ClientID

		versionNumber, err = s.appendVersion(ctx, recipeRepo, recipe, entity.ActionRefresh)
		if err != nil {
			return err
		}

		for _, item := range recipe.Items() {
			switch {
			case item.IngredientID != nil:
				ingredient, err := repoFactory.IngredientRepo().FindByID(ctx, *item.IngredientID)
				if errors.Is(err, repository.ErrIngredientNotFound) {
					return domainerrors.ErrIngredientNotFound.WithDetails("ingredient was removed: " + item.IngredientID.String())
				}
				if err != nil {
					return errors.Wrap(err, "failed to find ingredient")
				}
				// Guard against stale cross-client references.
				if err := s.authorizer.ValidateSelfOrAdmin(ctx, ingredient.ClientID); err != nil {
					return err
				}
				item.Ingredient = ingredient
				item.CalculateSnapshot()

			case item.SubProductID != nil:
				subProduct, err := repoFactory.ProductRepo().FindByID(ctx, *item.SubProductID)
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WithDetails("sub-product was removed: " + item.SubProductID.String())
				}
				if err != nil {
					return errors.Wrap(err, "failed to find sub-product")
				}
				if subProduct.Recipe != nil {
					if err := s.authorizer.ValidateSelfOrAdmin(ctx, subProduct.Recipe.ClientID); err != nil {
						return err
					}
				}
				item.SubProduct = subProduct
				item.CalculateSnapshot()
			}
		}

		recipe.LastUpdateDate = time.Now()
		if err := recipeRepo.Save(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to save recipe")
		}

		out = toRecipeOutput(recipe)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, id, clientID, entity.ActionRefresh, versionNumber)

	return out, nil
}

// RestoreVersion snapshots the current state, so restoring is itself
// versioned and can be undone, then overwrites the live recipe from the
// target snapshot, rebuilding the item list against the current repository. When a
// referenced component no longer exists the whole restore fails and rolls
// back.
func (s *recipeService) RestoreVersion(ctx context.Context, recipeID, versionID uuid.UUID) (*usecase.RecipeOutput, error) {
	var out *usecase.RecipeOutput
	var clientID uuid.UUID
	var versionNumber int
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		version, err := recipeRepo.FindVersionByID(ctx, versionID, recipeID)
		if errors.Is(err, repository.ErrVersionNotFound) {
			return domainerrors.ErrVersionNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find version")
		}

		recipe, err := s.loadActiveRecipe(ctx, recipeRepo, recipeID)
		if err != nil {
			return err
		}
		if err := s.authorizer.ValidateSelfOrAdmin(ctx, recipe.ClientID); err != nil {
			return err
		}
		clientID = recipe.ClientID

		versionNumber, err = s.appendVersion(ctx, recipeRepo, recipe, entity.ActionRestore)
		if err != nil {
			return err
		}

		recipe.Description = version.Description
		recipe.Amount = version.Amount
		recipe.Product.Name = version.ProductNameSnapshot
		recipe.Product.Price = version.ProductPriceSnapshot

		items, err := s.rebuildItemsFromVersion(ctx, repoFactory, version)
		if err != nil {
			return err
		}
		recipe.ReplaceItems(items)

		now := time.Now()
		recipe.LastUpdateDate = now
		recipe.Product.LastUpdateDate = now

		if err := recipeRepo.Save(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to save recipe")
		}

		out = toRecipeOutput(recipe)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, recipeID, clientID, entity.ActionRestore, versionNumber)

	return out, nil
}

// FindByID returns the live recipe with financials derived from its frozen
// item costs.
func (s *recipeService) FindByID(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error) {
	recipe, err := s.loadRecipe(ctx, s.recipeRepo, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, recipe.ClientID); err != nil {
		return nil, err
	}
	if recipe.Deleted {
		return nil, domainerrors.ErrRecipeNotFound.WithDetails("recipe was deleted")
	}

	return toRecipeOutput(recipe), nil
}

// FindByClient lists the authenticated client's recipes.
func (s *recipeService) FindByClient(ctx context.Context) ([]*usecase.RecipeOutput, error) {
	principal, err := s.authorizer.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.FindByClient(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by client")
	}

	outputs := make([]*usecase.RecipeOutput, 0, len(recipes))
	for _, recipe := range recipes {
		outputs = append(outputs, toRecipeOutput(recipe))
	}

	return outputs, nil
}

// FindVersions returns the recipe's history, most recent first, each entry
// with financials computed from its own snapshot. Deleted recipes keep their
// history readable.
func (s *recipeService) FindVersions(ctx context.Context, recipeID uuid.UUID) ([]*usecase.RecipeVersionOutput, error) {
	recipe, err := s.loadRecipe(ctx, s.recipeRepo, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, recipe.ClientID); err != nil {
		return nil, err
	}

	versions, err := s.recipeRepo.FindVersions(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find versions")
	}

	outputs := make([]*usecase.RecipeVersionOutput, 0, len(versions))
	for _, version := range versions {
		outputs = append(outputs, toVersionOutput(version))
	}

	return outputs, nil
}

// FindVersionByID returns one snapshot of the recipe's history.
func (s *recipeService) FindVersionByID(ctx context.Context, recipeID, versionID uuid.UUID) (*usecase.RecipeVersionOutput, error) {
	version, err := s.recipeRepo.FindVersionByID(ctx, versionID, recipeID)
	if errors.Is(err, repository.ErrVersionNotFound) {
		return nil, domainerrors.ErrVersionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find version")
	}

	recipe, err := s.loadRecipe(ctx, s.recipeRepo, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, recipe.ClientID); err != nil {
		return nil, err
	}

	return toVersionOutput(version), nil
}

// loadRecipe maps the repository's not-found sentinel to the domain error.
func (s *recipeService) loadRecipe(ctx context.Context, recipeRepo repository.RecipeRepository, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := recipeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return nil, domainerrors.ErrRecipeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}

// loadActiveRecipe is loadRecipe plus the write-path policy: the DELETED
// state is terminal, so a soft-deleted recipe reports not-found to every
// mutating operation.
func (s *recipeService) loadActiveRecipe(ctx context.Context, recipeRepo repository.RecipeRepository, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := s.loadRecipe(ctx, recipeRepo, id)
	if err != nil {
		return nil, err
	}
	if recipe.Deleted {
		return nil, domainerrors.ErrRecipeNotFound.WithDetails("recipe was deleted")
	}

	return recipe, nil
}

// appendVersion writes one immutable snapshot of the recipe's current state.
// The next version number is the current count plus one; versions are never
// individually deleted, so this matches max+1.
func (s *recipeService) appendVersion(ctx context.Context, recipeRepo repository.RecipeRepository, recipe *entity.Recipe, action entity.VersionActionType) (int, error) {
	count, err := recipeRepo.CountVersions(ctx, recipe.ID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count versions")
	}

	version := entity.NewRecipeVersion(recipe, action, count+1, time.Now())
	if err := recipeRepo.CreateVersion(ctx, version); err != nil {
		return 0, errors.Wrap(err, "failed to create version")
	}

	return version.VersionNumber, nil
}

// buildItems resolves and authorizes each incoming item reference, freezes
// its cost snapshot and returns the detached items ready for ReplaceItems.
func (s *recipeService) buildItems(ctx context.Context, repoFactory repository.RepositoryFactory, inputs []usecase.RecipeItemInput) ([]*entity.RecipeItem, error) {
	items := make([]*entity.RecipeItem, 0, len(inputs))
	for _, input := range inputs {
		item := &entity.RecipeItem{
			ID:       uuid.New(),
			Quantity: input.Quantity,
		}

		switch {
		case input.IngredientID != nil:
			ingredient, err := repoFactory.IngredientRepo().FindByID(ctx, *input.IngredientID)
			if errors.Is(err, repository.ErrIngredientNotFound) {
				return nil, domainerrors.ErrIngredientNotFound.WithDetails(input.IngredientID.String())
			}
			if err != nil {
				return nil, errors.Wrap(err, "failed to find ingredient")
			}
			if err := s.authorizer.ValidateSelfOrAdmin(ctx, ingredient.ClientID); err != nil {
				return nil, err
			}
			id := ingredient.ID
			item.IngredientID = &id
			item.Ingredient = ingredient

		case input.SubProductID != nil:
			subProduct, err := repoFactory.ProductRepo().FindByID(ctx, *input.SubProductID)
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(input.SubProductID.String())
			}
			if err != nil {
				return nil, errors.Wrap(err, "failed to find sub-product")
			}
			if subProduct.Recipe != nil {
				if err := s.authorizer.ValidateSelfOrAdmin(ctx, subProduct.Recipe.ClientID); err != nil {
					return nil, err
				}
			}
			id := subProduct.ID
			item.SubProductID = &id
			item.SubProduct = subProduct
		}

		item.CalculateSnapshot()
		items = append(items, item)
	}

	return items, nil
}

// rebuildItemsFromVersion re-resolves every snapshot item against the current
// repository, carrying the frozen quantity and costs over verbatim. A missing
// component fails the restore atomically.
func (s *recipeService) rebuildItemsFromVersion(ctx context.Context, repoFactory repository.RepositoryFactory, version *entity.RecipeVersion) ([]*entity.RecipeItem, error) {
	items := make([]*entity.RecipeItem, 0, len(version.Items))
	for _, itemVersion := range version.Items {
		item := &entity.RecipeItem{
			ID:        uuid.New(),
			Quantity:  itemVersion.Quantity,
			UnitCost:  itemVersion.UnitCostSnapshot,
			TotalCost: itemVersion.TotalCostSnapshot,
		}

		switch {
		case itemVersion.IngredientID != nil:
			ingredient, err := repoFactory.IngredientRepo().FindByID(ctx, *itemVersion.IngredientID)
			if errors.Is(err, repository.ErrIngredientNotFound) {
				return nil, domainerrors.ErrIngredientNotFound.WithDetails(
					"cannot restore: ingredient was removed: " + itemVersion.IngredientID.String())
			}
			if err != nil {
				return nil, errors.Wrap(err, "failed to find ingredient")
			}
			id := ingredient.ID
			item.IngredientID = &id
			item.Ingredient = ingredient

		case itemVersion.SubProductID != nil:
			subProduct, err := repoFactory.ProductRepo().FindByID(ctx, *itemVersion.SubProductID)
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(
					"cannot restore: sub-product was removed: " + itemVersion.SubProductID.String())
			}
			if err != nil {
				return nil, errors.Wrap(err, "failed to find sub-product")
			}
			id := subProduct.ID
			item.SubProductID = &id
			item.SubProduct = subProduct
		}

		items = append(items, item)
	}

	return items, nil
}

// publishEvent emits a lifecycle event after the transaction committed.
// Publishing failures are logged, never propagated: the mutation already
// happened.
func (s *recipeService) publishEvent(ctx context.Context, recipeID, clientID uuid.UUID, action entity.VersionActionType, versionNumber int) {
	if s.publisher == nil {
		return
	}

	event := &service.RecipeEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		RecipeID:      recipeID.String(),
		ClientID:      clientID.String(),
		Action:        string(action),
		VersionNumber: versionNumber,
	}
	if err := s.publisher.PublishRecipeEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish recipe event",
			slog.String("recipe_id", event.RecipeID),
			slog.String("action", event.Action),
			slog.Any("error", err),
		)
	}
}

// validateRecipeInput rejects malformed input before any persistence I/O.
func validateRecipeInput(input *usecase.RecipeInput) error {
	if input.Amount <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}
	for _, item := range input.Items {
		if !item.Quantity.IsPositive() {
			return domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
		}
		hasIngredient := item.IngredientID != nil
		hasSubProduct := item.SubProductID != nil
		if hasIngredient == hasSubProduct {
			return domainerrors.ErrValidationFailed.WithDetails(
				"item must reference exactly one of ingredient or sub-product")
		}
	}

	return nil
}

// toRecipeOutput builds the DTO with financials recomputed at the boundary
// from the recipe's frozen item costs.
func toRecipeOutput(recipe *entity.Recipe) *usecase.RecipeOutput {
	items := recipe.Items()
	itemOutputs := make([]usecase.RecipeItemOutput, 0, len(items))
	itemTotals := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		itemOutputs = append(itemOutputs, toItemOutput(item))
		itemTotals = append(itemTotals, item.TotalCost)
	}

	out := &usecase.RecipeOutput{
		ID:             recipe.ID,
		ProductName:    recipe.Product.Name,
		ProductPrice:   recipe.Product.Price,
		ImgURL:         recipe.Product.ImgURL,
		Description:    recipe.Description,
		Amount:         recipe.Amount,
		LastUpdateDate: recipe.LastUpdateDate,
		Items:          itemOutputs,
	}

	totalCost := costing.TotalCost(itemTotals)
	out.TotalCost = totalCost
	if costPerUnit, ok := costing.CostPerUnit(totalCost, recipe.Amount); ok {
		out.CostPerUnit = &costPerUnit
	}
	out.Profit = costing.Profit(recipe.Product.Price, totalCost)
	if margin, ok := costing.Margin(out.Profit, recipe.Product.Price); ok {
		out.Margin = &margin
	}

	return out
}

func toItemOutput(item *entity.RecipeItem) usecase.RecipeItemOutput {
	out := usecase.RecipeItemOutput{
		ID:           item.ID,
		IngredientID: item.IngredientID,
		SubProductID: item.SubProductID,
		Unit:         string(entity.UnitTypeUnit),
		Quantity:     item.Quantity,
		UnitCost:     item.UnitCost,
		TotalCost:    item.TotalCost,
	}
	switch {
	case item.Ingredient != nil:
		out.Name = item.Ingredient.Name
		out.Unit = string(item.Ingredient.Unit)
	case item.SubProduct != nil:
		out.Name = item.SubProduct.Name
	}

	return out
}

// toVersionOutput builds the DTO of one snapshot; its financials come from
// the snapshot's own frozen figures, not from the live recipe.
func toVersionOutput(version *entity.RecipeVersion) *usecase.RecipeVersionOutput {
	itemOutputs := make([]usecase.RecipeItemVersionOutput, 0, len(version.Items))
	itemTotals := make([]decimal.Decimal, 0, len(version.Items))
	for _, itemVersion := range version.Items {
		itemOutputs = append(itemOutputs, usecase.RecipeItemVersionOutput{
			IngredientName:    itemVersion.IngredientName,
			IngredientID:      itemVersion.IngredientID,
			SubProductID:      itemVersion.SubProductID,
			Quantity:          itemVersion.Quantity,
			Unit:              string(itemVersion.Unit),
			UnitCostSnapshot:  itemVersion.UnitCostSnapshot,
			TotalCostSnapshot: itemVersion.TotalCostSnapshot,
		})
		itemTotals = append(itemTotals, itemVersion.TotalCostSnapshot)
	}

	out := &usecase.RecipeVersionOutput{
		ID:                   version.ID,
		VersionNumber:        version.VersionNumber,
		CreatedAt:            version.CreatedAt,
		Description:          version.Description,
		Amount:               version.Amount,
		ProductNameSnapshot:  version.ProductNameSnapshot,
		ProductPriceSnapshot: version.ProductPriceSnapshot,
		ActionType:           string(version.ActionType),
		Items:                itemOutputs,
	}

	out.TotalCost = costing.TotalCost(itemTotals)
	out.Profit = costing.Profit(version.ProductPriceSnapshot, out.TotalCost)
	if margin, ok := costing.Margin(out.Profit, version.ProductPriceSnapshot); ok {
		out.Margin = &margin
	}

	return out
}
