package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer account. BalanceMinor holds the store-credit balance in
// minor currency units; return settlements credit the refunded sale price here.
type Customer struct {
	ID           uuid.UUID
	Email        string // Login email, unique across all accounts.
	Name         string
	BalanceMinor int64 // Never negative after any operation.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreditBalance adds amount (minor units) to the customer's balance.
func (c *Customer) CreditBalance(amountMinor int64) {
	c.BalanceMinor += amountMinor
}
