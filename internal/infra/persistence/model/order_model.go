package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Orders are the audit trail of sales:
// product_id and manufacturer_id deliberately carry no foreign key constraint
// so rows survive listing and account deletion.
type OrderModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ManufacturerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SoldAtPriceMinor int64     `gorm:"not null;check:sold_at_price_minor >= 0"`
	OrderStatus      string    `gorm:"type:varchar(32);not null"`
	ReturnStatus     string    `gorm:"type:varchar(32);not null;default:'NONE'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeliveredAt      *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
