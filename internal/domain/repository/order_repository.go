package repository

import (
	"context"

	"weavewhisper/internal/domain/entity"
	"weavewhisper/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are an audit trail: they are created at purchase time and mutated by
// fulfilment status changes, never deleted.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByManufacturer retrieves all orders that sold the manufacturer's products.
	FindByManufacturer(ctx context.Context, manufacturerID uuid.UUID) ([]*entity.Order, error)

	// FindByCustomer retrieves all orders of a customer, newest first
	// (created_at descending).
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ExistsByIDProductManufacturer reports whether an order with the given id
	// references both the given product and the given manufacturer. This is the
	// ownership check behind manufacturer-initiated status changes.
	ExistsByIDProductManufacturer(ctx context.Context, orderID, productID, manufacturerID uuid.UUID) (bool, error)

	// Update persists status, return status and delivery timestamp mutations.
	Update(ctx context.Context, order *entity.Order) error
}
