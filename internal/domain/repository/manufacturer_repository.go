// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"weavewhisper/internal/domain/entity"
	"weavewhisper/internal/errors"

	"github.com/google/uuid"
)

// ErrManufacturerNotFound is a domain-specific error returned when a manufacturer is not found.
var ErrManufacturerNotFound = errors.New("manufacturer not found")

// ManufacturerRepository defines the standard operations for manufacturer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ManufacturerRepository interface {
	// FindByID retrieves a single manufacturer by its unique ID, without products.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error)

	// FindByIDWithProducts retrieves a manufacturer together with its product listings.
	FindByIDWithProducts(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error)

	// Create persists a new manufacturer entity to the storage.
	Create(ctx context.Context, manufacturer *entity.Manufacturer) error

	// DeleteByID removes the manufacturer account. Product rows cascade at the
	// database level; orders keep their manufacturer reference for auditing.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail reports whether any manufacturer account uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByBrandName reports whether the brand name is already registered.
	ExistsByBrandName(ctx context.Context, brandName string) (bool, error)

	// ExistsByTaxNumber reports whether the tax number is already registered.
	ExistsByTaxNumber(ctx context.Context, taxNumber string) (bool, error)

	// ListBrandNames returns the brand names of all registered manufacturers.
	ListBrandNames(ctx context.Context) ([]string, error)
}
