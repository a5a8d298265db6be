package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"costbook/internal/domain/entity"
	"costbook/internal/domain/repository"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ingredientServiceMocks struct {
	ingredientRepo *MockIngredientRepository
	supplierRepo   *MockSupplierRepository
	authorizer     *MockAuthorizer
	imageStorage   *MockImageStorage
}

func newTestIngredientService() (usecase.IngredientUsecase, *ingredientServiceMocks) {
	m := &ingredientServiceMocks{
		ingredientRepo: new(MockIngredientRepository),
		supplierRepo:   new(MockSupplierRepository),
		authorizer:     new(MockAuthorizer),
		imageStorage:   new(MockImageStorage),
	}

	svc := NewIngredientService(IngredientServiceParams{
		IngredientRepo: m.ingredientRepo,
		SupplierRepo:   m.supplierRepo,
		Authorizer:     m.authorizer,
		ImageStorage:   m.imageStorage,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

func TestIngredientService_Insert_DerivesUnitCost(t *testing.T) {
	svc, m := newTestIngredientService()

	owner := uuid.New()
	m.authorizer.On("CurrentPrincipal", mock.Anything).Return(&entity.Principal{ID: owner}, nil)
	m.ingredientRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Ingredient")).Return(nil)

	out, err := svc.Insert(context.Background(), &usecase.IngredientInput{
		Name:            "Flour",
		Brand:           "Lotus",
		PriceCost:       decimal.RequireFromString("45"),
		QuantityPerUnit: decimal.RequireFromString("1000"),
		Unit:            string(entity.UnitTypeGram),
	})

	require.NoError(t, err)
	require.NotNil(t, out.UnitCost)
	assert.Equal(t, "0.045", out.UnitCost.String())
	assert.Equal(t, string(entity.UnitTypeGram), out.Unit)
}

func TestIngredientService_Insert_UndefinedUnitCostStaysNull(t *testing.T) {
	svc, m := newTestIngredientService()

	owner := uuid.New()
	m.authorizer.On("CurrentPrincipal", mock.Anything).Return(&entity.Principal{ID: owner}, nil)
	m.ingredientRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Ingredient")).Return(nil)

	out, err := svc.Insert(context.Background(), &usecase.IngredientInput{
		Name:            "Mystery Spice",
		PriceCost:       decimal.RequireFromString("12"),
		QuantityPerUnit: decimal.Zero,
		Unit:            string(entity.UnitTypeUnit),
	})

	require.NoError(t, err)
	assert.Nil(t, out.UnitCost)
}

func TestIngredientService_Insert_RejectsUnknownUnit(t *testing.T) {
	svc, m := newTestIngredientService()

	_, err := svc.Insert(context.Background(), &usecase.IngredientInput{
		Name: "Flour",
		Unit: "BUSHEL",
	})

	assertErrorCode(t, err, "VALIDATION_FAILED")
	m.ingredientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIngredientService_Insert_ChecksSupplierReference(t *testing.T) {
	svc, m := newTestIngredientService()

	owner := uuid.New()
	supplierID := uuid.New()
	m.authorizer.On("CurrentPrincipal", mock.Anything).Return(&entity.Principal{ID: owner}, nil)
	m.supplierRepo.On("FindByID", mock.Anything, supplierID).Return(nil, repository.ErrSupplierNotFound)

	_, err := svc.Insert(context.Background(), &usecase.IngredientInput{
		Name:       "Flour",
		Unit:       string(entity.UnitTypeGram),
		SupplierID: &supplierID,
	})

	assertErrorCode(t, err, "SUPPLIER_NOT_FOUND")
	m.ingredientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIngredientService_Update_ReplacesWritableFields(t *testing.T) {
	svc, m := newTestIngredientService()

	owner := uuid.New()
	ingredient := testIngredient(owner, "10", "1")

	m.ingredientRepo.On("FindByID", mock.Anything, ingredient.ID).Return(ingredient, nil)
	m.authorizer.On("ValidateSelfOrAdmin", mock.Anything, owner).Return(nil)
	m.ingredientRepo.On("Save", mock.Anything, ingredient).Return(nil)

	out, err := svc.Update(context.Background(), ingredient.ID, &usecase.IngredientInput{
		Name:            "Bread Flour",
		PriceCost:       decimal.RequireFromString("30"),
		QuantityPerUnit: decimal.RequireFromString("500"),
		Unit:            string(entity.UnitTypeGram),
	})

	require.NoError(t, err)
	assert.Equal(t, "Bread Flour", out.Name)
	require.NotNil(t, out.UnitCost)
	assert.Equal(t, "0.06", out.UnitCost.String())
}

func TestIngredientService_Delete_UnknownIDReportsNotFound(t *testing.T) {
	svc, m := newTestIngredientService()

	id := uuid.New()
	m.ingredientRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrIngredientNotFound)

	err := svc.Delete(context.Background(), id)

	assertErrorCode(t, err, "INGREDIENT_NOT_FOUND")
	m.authorizer.AssertNotCalled(t, "ValidateSelfOrAdmin", mock.Anything, mock.Anything)
}

func TestIngredientService_UploadImage_PersistsReturnedURL(t *testing.T) {
	svc, m := newTestIngredientService()

	owner := uuid.New()
	ingredient := testIngredient(owner, "10", "1")
	data := []byte{0x89, 0x50, 0x4e, 0x47}

	m.ingredientRepo.On("FindByID", mock.Anything, ingredient.ID).Return(ingredient, nil)
	m.authorizer.On("ValidateSelfOrAdmin", mock.Anything, owner).Return(nil)
	m.imageStorage.On("Save", mock.Anything, "ingredients/"+ingredient.ID.String()+".png", data, "image/png").
		Return("https://img.example.com/"+ingredient.ID.String()+".png", nil)
	m.ingredientRepo.On("Save", mock.Anything, ingredient).Return(nil)

	out, err := svc.UploadImage(context.Background(), ingredient.ID, data, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/"+ingredient.ID.String()+".png", out.ImgURL)
	m.ingredientRepo.AssertCalled(t, "Save", mock.Anything, ingredient)
}
