package postgres

import (
	"context"

	"weavewhisper/internal/domain/entity"
	"weavewhisper/internal/domain/repository"
	"weavewhisper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product including its images, ordered by position.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.position ASC")
		}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByManufacturer retrieves all products listed by a manufacturer.
func (repo *productRepository) FindByManufacturer(ctx context.Context, manufacturerID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.position ASC")
		}).
		Where("manufacturer_id = ?", manufacturerID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by manufacturer")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// DeleteByManufacturer removes every product listed by the manufacturer and
// returns the number of deleted listings. Images cascade at the database level.
func (repo *productRepository) DeleteByManufacturer(ctx context.Context, manufacturerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("manufacturer_id = ?", manufacturerID).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete products by manufacturer")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]entity.ProductImage, 0, len(data.Images))
	for _, imageM := range data.Images {
		images = append(images, entity.ProductImage{
			ID:        imageM.ID,
			ProductID: imageM.ProductID,
			ImageName: imageM.ImageName,
			Position:  imageM.Position,
		})
	}

	return &entity.Product{
		ID:             data.ID,
		ManufacturerID: data.ManufacturerID,
		Name:           data.Name,
		PriceMinor:     data.PriceMinor,
		Images:         images,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
