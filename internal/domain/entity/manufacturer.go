// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Manufacturer is a seller account. BrandName, TaxNumber and Email are each
// globally unique; registration rejects duplicates before persisting.
type Manufacturer struct {
	ID           uuid.UUID // The Global Unique Identifier for the manufacturer.
	Email        string    // The owning user's login email, unique across all accounts.
	Name         string    // The display name of the account owner.
	BrandName    string    // Public brand under which products are listed, globally unique.
	TaxNumber    string    // Tax/registration number, globally unique.
	PasswordHash string    // Salted bcrypt hash of the account password.
	Products     []*Product
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
