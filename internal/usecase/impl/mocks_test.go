package impl

import (
	"context"
	"time"

	"costbook/internal/domain/entity"
	"costbook/internal/domain/repository"
	"costbook/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Test doubles for the repository and service ports.

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	args := m.Called(ctx, recipe)

	return args.Error(0)
}

func (m *MockRecipeRepository) Save(ctx context.Context, recipe *entity.Recipe) error {
	args := m.Called(ctx, recipe)

	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Recipe, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CreateVersion(ctx context.Context, version *entity.RecipeVersion) error {
	args := m.Called(ctx, version)

	return args.Error(0)
}

func (m *MockRecipeRepository) CountVersions(ctx context.Context, recipeID uuid.UUID) (int, error) {
	args := m.Called(ctx, recipeID)

	return args.Int(0), args.Error(1)
}

func (m *MockRecipeRepository) FindVersions(ctx context.Context, recipeID uuid.UUID) ([]*entity.RecipeVersion, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.RecipeVersion), args.Error(1)
}

func (m *MockRecipeRepository) FindVersionByID(ctx context.Context, versionID, recipeID uuid.UUID) (*entity.RecipeVersion, error) {
	args := m.Called(ctx, versionID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RecipeVersion), args.Error(1)
}

type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	args := m.Called(ctx, ingredient)

	return args.Error(0)
}

func (m *MockIngredientRepository) Save(ctx context.Context, ingredient *entity.Ingredient) error {
	args := m.Called(ctx, ingredient)

	return args.Error(0)
}

func (m *MockIngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Ingredient, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	args := m.Called(ctx, supplier)

	return args.Error(0)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *entity.Supplier) error {
	args := m.Called(ctx, supplier)

	return args.Error(0)
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Supplier, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) CurrentPrincipal(ctx context.Context) (*entity.Principal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Principal), args.Error(1)
}

func (m *MockAuthorizer) ValidateSelfOrAdmin(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)

	return args.Error(0)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)

	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	args := m.Called(userID, roles)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)

	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) Close() error {
	args := m.Called()

	return args.Error(0)
}

// fakeRepoFactory hands the test's mocks out as transaction-bound
// repositories.
type fakeRepoFactory struct {
	recipeRepo     *MockRecipeRepository
	ingredientRepo *MockIngredientRepository
	productRepo    *MockProductRepository
	supplierRepo   *MockSupplierRepository
	userRepo       *MockUserRepository
}

func (f *fakeRepoFactory) RecipeRepo() repository.RecipeRepository         { return f.recipeRepo }
func (f *fakeRepoFactory) IngredientRepo() repository.IngredientRepository { return f.ingredientRepo }
func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository       { return f.productRepo }
func (f *fakeRepoFactory) SupplierRepo() repository.SupplierRepository     { return f.supplierRepo }
func (f *fakeRepoFactory) UserRepo() repository.UserRepository             { return f.userRepo }

// fakeTxManager runs the callback directly against the fake factory; the
// commit/rollback semantics belong to the persistence layer's own tests.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (t *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(t.factory)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishRecipeEvent(ctx context.Context, event *service.RecipeEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
