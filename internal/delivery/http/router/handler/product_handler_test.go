package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "costbook/internal/domain/errors"
	"costbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecipeUsecase struct {
	mock.Mock
}

func (m *mockRecipeUsecase) Insert(ctx context.Context, input *usecase.RecipeInput) (*usecase.RecipeOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeOutput), args.Error(1)
}

func (m *mockRecipeUsecase) Update(ctx context.Context, id uuid.UUID, input *usecase.RecipeInput) (*usecase.RecipeOutput, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeOutput), args.Error(1)
}

func (m *mockRecipeUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockRecipeUsecase) RefreshPrices(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeOutput), args.Error(1)
}

func (m *mockRecipeUsecase) RestoreVersion(ctx context.Context, recipeID, versionID uuid.UUID) (*usecase.RecipeOutput, error) {
	args := m.Called(ctx, recipeID, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeOutput), args.Error(1)
}

func (m *mockRecipeUsecase) FindByID(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeOutput), args.Error(1)
}

func (m *mockRecipeUsecase) FindByClient(ctx context.Context) ([]*usecase.RecipeOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.RecipeOutput), args.Error(1)
}

func (m *mockRecipeUsecase) FindVersions(ctx context.Context, recipeID uuid.UUID) ([]*usecase.RecipeVersionOutput, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.RecipeVersionOutput), args.Error(1)
}

func (m *mockRecipeUsecase) FindVersionByID(ctx context.Context, recipeID, versionID uuid.UUID) (*usecase.RecipeVersionOutput, error) {
	args := m.Called(ctx, recipeID, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RecipeVersionOutput), args.Error(1)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func newProductQRContext(t *testing.T, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c, rec
}

func TestProductHandler_QRCode_RendersPNGForExistingProduct(t *testing.T) {
	recipeUc := new(mockRecipeUsecase)
	qrSvc := new(mockQRCodeService)
	h := NewProductHandler(recipeUc, qrSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	productID := uuid.New()
	recipeUc.On("FindByID", mock.Anything, productID).
		Return(&usecase.RecipeOutput{ID: productID, ProductName: "Brownie"}, nil)
	qrSvc.On("GenerateProductQR", productID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	c, rec := newProductQRContext(t, productID.String())

	require.NoError(t, h.QRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestProductHandler_QRCode_UnknownProductReportsNotFound(t *testing.T) {
	recipeUc := new(mockRecipeUsecase)
	qrSvc := new(mockQRCodeService)
	h := NewProductHandler(recipeUc, qrSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	productID := uuid.New()
	recipeUc.On("FindByID", mock.Anything, productID).
		Return(nil, domainerrors.ErrRecipeNotFound)

	c, _ := newProductQRContext(t, productID.String())

	err := h.QRCode(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
	qrSvc.AssertNotCalled(t, "GenerateProductQR", mock.Anything)
}
