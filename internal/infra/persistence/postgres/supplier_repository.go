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

// supplierRepository implements the repository.SupplierRepository interface using GORM.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

// Create persists a new supplier.
func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required supplier field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	return nil
}

// Save persists the current state of an existing supplier.
func (repo *supplierRepository) Save(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Save(supplierM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save supplier")
	}

	return nil
}

// FindByID loads one supplier.
func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplierM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by id")
	}

	return toSupplierDomain(&supplierM), nil
}

// FindByClient loads all suppliers owned by a client, by name.
func (repo *supplierRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Supplier, error) {
	var supplierMs []model.SupplierModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&supplierMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find suppliers by client")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierMs))
	for i := range supplierMs {
		suppliers = append(suppliers, toSupplierDomain(&supplierMs[i]))
	}

	return suppliers, nil
}

// Delete removes a supplier. Ingredients referencing it keep the delete from
// happening via the foreign key.
func (repo *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SupplierModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferentialIntegrity.WrapMessage("supplier is still used by ingredients")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// --- mappers ---

func fromSupplierDomain(supplier *entity.Supplier) *model.SupplierModel {
	return &model.SupplierModel{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		TaxID:     supplier.TaxID,
		ClientID:  supplier.ClientID,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}

func toSupplierDomain(supplierM *model.SupplierModel) *entity.Supplier {
	return &entity.Supplier{
		ID:        supplierM.ID,
		Name:      supplierM.Name,
		Email:     supplierM.Email,
		Phone:     supplierM.Phone,
		TaxID:     supplierM.TaxID,
		ClientID:  supplierM.ClientID,
		CreatedAt: supplierM.CreatedAt,
		UpdatedAt: supplierM.UpdatedAt,
	}
}
