package impl

import (
	"context"
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

type supplierService struct {
	supplierRepo repository.SupplierRepository
	authorizer   service.Authorizer
	logger       *slog.Logger
}

// SupplierServiceParams holds dependencies for SupplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
	Authorizer   service.Authorizer
	Logger       *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		supplierRepo: params.SupplierRepo,
		authorizer:   params.Authorizer,
		logger:       params.Logger,
	}
}

func (s *supplierService) Insert(ctx context.Context, input *usecase.SupplierInput) (*usecase.SupplierOutput, error) {
	principal, err := s.authorizer.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		TaxID:     input.TaxID,
		ClientID:  principal.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, errors.Wrap(err, "failed to create supplier")
	}

	return toSupplierOutput(supplier), nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, input *usecase.SupplierInput) (*usecase.SupplierOutput, error) {
	supplier, err := s.loadSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, supplier.ClientID); err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.TaxID = input.TaxID
	supplier.UpdatedAt = time.Now()

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, errors.Wrap(err, "failed to save supplier")
	}

	return toSupplierOutput(supplier), nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.loadSupplier(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, supplier.ClientID); err != nil {
		return err
	}

	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete supplier")
	}

	return nil
}

func (s *supplierService) FindByID(ctx context.Context, id uuid.UUID) (*usecase.SupplierOutput, error) {
	supplier, err := s.loadSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.ValidateSelfOrAdmin(ctx, supplier.ClientID); err != nil {
		return nil, err
	}

	return toSupplierOutput(supplier), nil
}

func (s *supplierService) FindByClient(ctx context.Context) ([]*usecase.SupplierOutput, error) {
	principal, err := s.authorizer.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	suppliers, err := s.supplierRepo.FindByClient(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find suppliers by client")
	}

	outputs := make([]*usecase.SupplierOutput, 0, len(suppliers))
	for _, supplier := range suppliers {
		outputs = append(outputs, toSupplierOutput(supplier))
	}

	return outputs, nil
}

func (s *supplierService) loadSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSupplierNotFound) {
		return nil, domainerrors.ErrSupplierNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return supplier, nil
}

func toSupplierOutput(supplier *entity.Supplier) *usecase.SupplierOutput {
	return &usecase.SupplierOutput{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		TaxID:     supplier.TaxID,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}
