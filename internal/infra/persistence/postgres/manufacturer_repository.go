package postgres

import (
	"context"

	"weavewhisper/internal/domain/entity"
	domainerrors "weavewhisper/internal/domain/errors"
	"weavewhisper/internal/domain/repository"
	"weavewhisper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// manufacturerRepository implements the repository.ManufacturerRepository interface.
type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository is the constructor for manufacturerRepository.
func NewManufacturerRepository(db *gorm.DB) repository.ManufacturerRepository {
	return &manufacturerRepository{
		db: db,
	}
}

// FindByID retrieves a manufacturer by its unique ID, without products.
func (repo *manufacturerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error) {
	var manufacturerM model.ManufacturerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&manufacturerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrManufacturerNotFound
		}

		return nil, errors.Wrap(err, "failed to find manufacturer by ID")
	}

	return toManufacturerDomain(&manufacturerM), nil
}

// FindByIDWithProducts retrieves a manufacturer together with its listings.
func (repo *manufacturerRepository) FindByIDWithProducts(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error) {
	var manufacturerM model.ManufacturerModel

	if err := repo.db.WithContext(ctx).
		Preload("Products").
		Preload("Products.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.position ASC")
		}).
		Where("id = ?", id).
		First(&manufacturerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrManufacturerNotFound
		}

		return nil, errors.Wrap(err, "failed to find manufacturer with products")
	}

	manufacturer := toManufacturerDomain(&manufacturerM)
	manufacturer.Products = make([]*entity.Product, 0, len(manufacturerM.Products))
	for i := range manufacturerM.Products {
		manufacturer.Products = append(manufacturer.Products, toProductDomain(&manufacturerM.Products[i]))
	}

	return manufacturer, nil
}

// Create persists a new manufacturer.
func (repo *manufacturerRepository) Create(ctx context.Context, manufacturer *entity.Manufacturer) error {
	manufacturerM := fromManufacturerDomain(manufacturer)

	if err := repo.db.WithContext(ctx).Create(manufacturerM).Error; err != nil {
		// The use case pre-checks uniqueness, but concurrent registrations can
		// still race to the unique indexes.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("manufacturer already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required manufacturer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create manufacturer")
	}

	// Update the entity with generated values
	manufacturer.ID = manufacturerM.ID
	manufacturer.CreatedAt = manufacturerM.CreatedAt
	manufacturer.UpdatedAt = manufacturerM.UpdatedAt

	return nil
}

// DeleteByID removes the manufacturer account. Product rows cascade at the
// database level.
func (repo *manufacturerRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ManufacturerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete manufacturer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrManufacturerNotFound
	}

	return nil
}

// ExistsByEmail reports whether any manufacturer account uses the email.
func (repo *manufacturerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ManufacturerModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check manufacturer email")
	}

	return count > 0, nil
}

// ExistsByBrandName reports whether the brand name is already registered.
func (repo *manufacturerRepository) ExistsByBrandName(ctx context.Context, brandName string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ManufacturerModel{}).
		Where("brand_name = ?", brandName).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check brand name")
	}

	return count > 0, nil
}

// ExistsByTaxNumber reports whether the tax number is already registered.
func (repo *manufacturerRepository) ExistsByTaxNumber(ctx context.Context, taxNumber string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ManufacturerModel{}).
		Where("tax_number = ?", taxNumber).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check tax number")
	}

	return count > 0, nil
}

// ListBrandNames returns the brand names of all registered manufacturers.
func (repo *manufacturerRepository) ListBrandNames(ctx context.Context) ([]string, error) {
	var brandNames []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ManufacturerModel{}).
		Order("brand_name ASC").
		Pluck("brand_name", &brandNames).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brand names")
	}

	return brandNames, nil
}

// --- Mapper Functions ---

// toManufacturerDomain converts a GORM ManufacturerModel to a domain Manufacturer entity.
func toManufacturerDomain(data *model.ManufacturerModel) *entity.Manufacturer {
	if data == nil {
		return nil
	}

	return &entity.Manufacturer{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		BrandName:    data.BrandName,
		TaxNumber:    data.TaxNumber,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromManufacturerDomain converts a domain Manufacturer entity to a GORM ManufacturerModel.
func fromManufacturerDomain(data *entity.Manufacturer) *model.ManufacturerModel {
	if data == nil {
		return nil
	}

	return &model.ManufacturerModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		BrandName:    data.BrandName,
		TaxNumber:    data.TaxNumber,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
