package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"costbook/internal/domain/entity"
	domainerrors "costbook/internal/domain/errors"
	"costbook/internal/domain/repository"
	"costbook/internal/domain/service"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ingredientService struct {
	ingredientRepo repository.IngredientRepository
	supplierRepo   repository.SupplierRepository
	authorizer     service.Authorizer
	imageStorage   service.ImageStorage
	logger         *slog.Logger
}

// IngredientServiceParams holds dependencies for IngredientService, injected by Fx.
type IngredientServiceParams struct {
	fx.In

	IngredientRepo repository.IngredientRepository
	SupplierRepo   repository.SupplierRepository
	Authorizer     service.Authorizer
	ImageStorage   service.ImageStorage
	Logger         *slog.Logger
}

// NewIngredientService is the constructor for ingredientService.
func NewIngredientService(params IngredientServiceParams) usecase.IngredientUsecase {
	return &ingredientService{
		ingredientRepo: params.IngredientRepo,
		supplierRepo:   params.SupplierRepo,
		authorizer:     params.Authorizer,
		imageStorage:   params.ImageStorage,
		logger:         params.Logger,
	}
}

func (s *ingredientService) Insert(ctx context.Context, input *usecase.IngredientInput) (*usecase.IngredientOutput, error) {
	unit, err := parseUnit(input.Unit)
	if err != nil {
		return nil, err
	}

	principal, err := s.authorizer.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.checkSupplierRef(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	ingredient := &entity.Ingredient{
		ID:              uuid.New(),
		Name:            input.Name,
		Brand:           input.Brand,
		PriceCost:       input.PriceCost,
		QuantityPerUnit: input.QuantityPerUnit,
		Unit:            unit,
		SupplierID:      input.SupplierID,
		ClientID:        principal.ID,
		CreateDate:      now,
		LastUpdateDate:  now,
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, errors.Wrap(err, "failed to create ingredient")
	}

	return toIngredientOutput(ingredient), nil
}

func (s *ingredientService) Update(ctx context.Context, id uuid.UUID, input *usecase.IngredientInput) (*usecase.IngredientOutput, error) {
	unit, err := parseUnit(input.Unit)
	if err != nil {
		return nil, err
	}

	ingredient, err := s.loadIngredient(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, ingredient.ClientID); err != nil {
		return nil, err
	}

	if err := s.checkSupplierRef(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	ingredient.Name = input.Name
	ingredient.Brand = input.Brand
	ingredient.PriceCost = input.PriceCost
	ingredient.QuantityPerUnit = input.QuantityPerUnit
	ingredient.Unit = unit
	ingredient.SupplierID = input.SupplierID
	ingredient.LastUpdateDate = time.Now()

	if err := s.ingredientRepo.Save(ctx, ingredient); err != nil {
		return nil, errors.Wrap(err, "failed to save ingredient")
	}

	return toIngredientOutput(ingredient), nil
}

// Delete removes the ingredient row only. Recipes keep their frozen item
// costs; the persistence layer rejects the delete while recipe items still
// reference the ingredient.
func (s *ingredientService) Delete(ctx context.Context, id uuid.UUID) error {
	ingredient, err := s.loadIngredient(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, ingredient.ClientID); err != nil {
		return err
	}

	if err := s.ingredientRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete ingredient")
	}

	return nil
}

func (s *ingredientService) FindByID(ctx context.Context, id uuid.UUID) (*usecase.IngredientOutput, error) {
	ingredient, err := s.loadIngredient(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, ingredient.ClientID); err != nil {
		return nil, err
	}

	return toIngredientOutput(ingredient), nil
}

func (s *ingredientService) FindByClient(ctx context.Context) ([]*usecase.IngredientOutput, error) {
	principal, err := s.authorizer.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.ingredientRepo.FindByClient(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ingredients by client")
	}

	outputs := make([]*usecase.IngredientOutput, 0, len(ingredients))
	for _, ingredient := range ingredients {
		outputs = append(outputs, toIngredientOutput(ingredient))
	}

	return outputs, nil
}

func (s *ingredientService) UploadImage(ctx context.Context, id uuid.UUID, data []byte, contentType string) (*usecase.IngredientOutput, error) {
	ingredient, err := s.loadIngredient(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, ingredient.ClientID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("ingredients/%s%s", ingredient.ID, imageExtension(contentType))
	url, err := s.imageStorage.Save(ctx, key, data, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store ingredient image")
	}

	ingredient.ImgURL = url
	ingredient.LastUpdateDate = time.Now()
	if err := s.ingredientRepo.Save(ctx, ingredient); err != nil {
		return nil, errors.Wrap(err, "failed to save ingredient")
	}

	return toIngredientOutput(ingredient), nil
}

func (s *ingredientService) loadIngredient(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrIngredientNotFound) {
		return nil, domainerrors.ErrIngredientNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ingredient")
	}

	return ingredient, nil
}

// checkSupplierRef verifies an optional supplier reference resolves and
// belongs to the caller before it is persisted on the ingredient.
func (s *ingredientService) checkSupplierRef(ctx context.Context, supplierID *uuid.UUID) error {
	if supplierID == nil {
		return nil
	}

	supplier, err := s.supplierRepo.FindByID(ctx, *supplierID)
	if errors.Is(err, repository.ErrSupplierNotFound) {
		return domainerrors.ErrSupplierNotFound.WithDetails(supplierID.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to find supplier")
	}

	return s.authorizer.ValidateSelfOrAdmin(ctx, supplier.ClientID)
}

func parseUnit(raw string) (entity.UnitType, error) {
	unit := entity.UnitType(raw)
	if !unit.Valid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown unit: " + raw)
	}

	return unit, nil
}

func imageExtension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

func toIngredientOutput(ingredient *entity.Ingredient) *usecase.IngredientOutput {
	out := &usecase.IngredientOutput{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		Brand:           ingredient.Brand,
		PriceCost:       ingredient.PriceCost,
		QuantityPerUnit: ingredient.QuantityPerUnit,
		Unit:            string(ingredient.Unit),
		ImgURL:          ingredient.ImgURL,
		SupplierID:      ingredient.SupplierID,
		CreateDate:      ingredient.CreateDate,
		LastUpdateDate:  ingredient.LastUpdateDate,
	}
	if unitCost, ok := ingredient.UnitCost(); ok {
		out.UnitCost = &unitCost
	}

	return out
}
