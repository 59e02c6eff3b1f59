// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"weavewhisper/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterManufacturerInput defines the data required to register a new manufacturer.
type RegisterManufacturerInput struct {
	Name      string
	Email     string
	Password  string
	BrandName string
	TaxNumber string
}

// ChangeOrderStatusInput identifies the order a manufacturer wants to move to a
// new fulfilment status. ProductID and ManufacturerID are matched against the
// order as an ownership check.
type ChangeOrderStatusInput struct {
	OrderID        uuid.UUID
	ManufacturerID uuid.UUID
	ProductID      uuid.UUID
	NewStatus      entity.OrderStatus
}

// ChangeReturnStatusInput identifies the requested return a manufacturer accepts.
type ChangeReturnStatusInput struct {
	OrderID        uuid.UUID
	ManufacturerID uuid.UUID
	ProductID      uuid.UUID
}

// --- Output DTOs ---

// ManufacturerView is the client-facing projection of a manufacturer account.
// It never carries the password hash.
type ManufacturerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BrandName string    `json:"brand_name"`
	TaxNumber string    `json:"tax_number"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductShortView is the short product projection used in listing views.
type ProductShortView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceMinor int64     `json:"price_minor"`
	ImageName  string    `json:"image_name"`
}

// SoldProductView is one order row in the manufacturer's fulfilment views:
// in-flight sales and pending return requests.
type SoldProductView struct {
	OrderID          uuid.UUID           `json:"order_id"`
	ProductID        uuid.UUID           `json:"product_id"`
	Name             string              `json:"name"`
	ImageName        string              `json:"image_name"`
	SoldAtPriceMinor int64               `json:"sold_at_price_minor"`
	OrderStatus      entity.OrderStatus  `json:"order_status"`
	ReturnStatus     entity.ReturnStatus `json:"return_status"`
	OrderDate        time.Time           `json:"order_date"`
}

// ManufacturerUsecase defines the interface for manufacturer-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ManufacturerUsecase interface {
	// RegisterManufacturer creates a seller account. Uniqueness checks run in
	// priority order email > brand name > tax number and short-circuit on the
	// first violation.
	RegisterManufacturer(ctx context.Context, input *RegisterManufacturerInput) (*ManufacturerView, error)

	// DeleteManufacturer removes the manufacturer account and its listings.
	DeleteManufacturer(ctx context.Context, manufacturerID uuid.UUID) error

	// DeleteManufacturerListings removes every product listed by the
	// manufacturer; the account itself persists.
	DeleteManufacturerListings(ctx context.Context, manufacturerID uuid.UUID) error

	// ListProducts returns the manufacturer's current listings.
	ListProducts(ctx context.Context, manufacturerID uuid.UUID) ([]*ProductShortView, error)

	// ListBrandNames returns the brand names of all registered manufacturers.
	ListBrandNames(ctx context.Context) ([]string, error)

	// ListSoldProducts returns the manufacturer's in-flight orders, i.e. those
	// not yet delivered or cancelled.
	ListSoldProducts(ctx context.Context, manufacturerID uuid.UUID) ([]*SoldProductView, error)

	// ChangeOrderStatus moves an order to a new fulfilment status, stamping the
	// delivery time when it becomes DELIVERED.
	ChangeOrderStatus(ctx context.Context, input *ChangeOrderStatusInput) error

	// ListReturnRequests returns delivered orders whose return was requested.
	ListReturnRequests(ctx context.Context, manufacturerID uuid.UUID) ([]*SoldProductView, error)

	// ChangeReturnStatus accepts a requested return and credits the sale price
	// back to the customer's balance in the same transaction.
	ChangeReturnStatus(ctx context.Context, input *ChangeReturnStatusInput) error
}
