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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type supplierServiceMocks struct {
	supplierRepo *MockSupplierRepository
	authorizer   *MockAuthorizer
}

func newTestSupplierService() (usecase.SupplierUsecase, *supplierServiceMocks) {
	m := &supplierServiceMocks{
		supplierRepo: new(MockSupplierRepository),
		authorizer:   new(MockAuthorizer),
	}

	svc := NewSupplierService(SupplierServiceParams{
		SupplierRepo: m.supplierRepo,
		Authorizer:   m.authorizer,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

func TestSupplierService_Insert_OwnedByAuthenticatedClient(t *testing.T) {
	svc, m := newTestSupplierService()
	clientID := uuid.New()

	m.authorizer.On("CurrentPrincipal", mock.Anything).
		Return(&entity.Principal{ID: clientID}, nil)

	var created *entity.Supplier
	m.supplierRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Supplier")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Supplier)
		}).Return(nil)

	out, err := svc.Insert(context.Background(), &usecase.SupplierInput{
		Name:  "Golden Mills",
		Email: "orders@goldenmills.example",
		TaxID: "12345678",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, clientID, created.ClientID)
	assert.Equal(t, "Golden Mills", out.Name)
	assert.Equal(t, "12345678", out.TaxID)
}

func TestSupplierService_Update_ReplacesWritableFields(t *testing.T) {
	svc, m := newTestSupplierService()
	ownerID := uuid.New()
	supplier := &entity.Supplier{
		ID:       uuid.New(),
		Name:     "Golden Mills",
		ClientID: ownerID,
	}

	m.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
	m.authorizer.On("ValidateSelfOrAdmin", mock.Anything, ownerID).Return(nil)
	m.supplierRepo.On("Save", mock.Anything, supplier).Return(nil)

	out, err := svc.Update(context.Background(), supplier.ID, &usecase.SupplierInput{
		Name:  "Golden Mills Co.",
		Phone: "+886-2-1234-5678",
	})

	require.NoError(t, err)
	assert.Equal(t, "Golden Mills Co.", out.Name)
	assert.Equal(t, "+886-2-1234-5678", out.Phone)
}

func TestSupplierService_Delete_UnknownIDReportsNotFound(t *testing.T) {
	svc, m := newTestSupplierService()
	id := uuid.New()

	m.supplierRepo.On("FindByID", mock.Anything, id).
		Return(nil, repository.ErrSupplierNotFound)

	err := svc.Delete(context.Background(), id)

	assertErrorCode(t, err, "SUPPLIER_NOT_FOUND")
	m.supplierRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSupplierService_FindByClient_ListsOwnSuppliers(t *testing.T) {
	svc, m := newTestSupplierService()
	clientID := uuid.New()

	m.authorizer.On("CurrentPrincipal", mock.Anything).
		Return(&entity.Principal{ID: clientID}, nil)
	m.supplierRepo.On("FindByClient", mock.Anything, clientID).
		Return([]*entity.Supplier{
			{ID: uuid.New(), Name: "Golden Mills", ClientID: clientID},
			{ID: uuid.New(), Name: "Sunrise Dairy", ClientID: clientID},
		}, nil)

	outs, err := svc.FindByClient(context.Background())

	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, "Golden Mills", outs[0].Name)
	assert.Equal(t, "Sunrise Dairy", outs[1].Name)
}
