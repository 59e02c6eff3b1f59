package repository

import (
	"context"

	"weavewhisper/internal/domain/entity"
	"weavewhisper/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product, including its images.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByManufacturer retrieves all products listed by a manufacturer.
	FindByManufacturer(ctx context.Context, manufacturerID uuid.UUID) ([]*entity.Product, error)

	// DeleteByManufacturer removes every product listed by the manufacturer and
	// returns the number of deleted listings.
	DeleteByManufacturer(ctx context.Context, manufacturerID uuid.UUID) (int64, error)
}
