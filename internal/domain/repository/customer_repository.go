package repository

import (
	"context"

	"weavewhisper/internal/domain/entity"
	"weavewhisper/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// Update modifies an existing customer entity in the storage.
	// Used by return settlement to persist the credited balance.
	Update(ctx context.Context, customer *entity.Customer) error

	// ExistsByEmail reports whether any customer account uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
