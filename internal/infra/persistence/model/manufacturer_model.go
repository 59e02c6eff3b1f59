package model

import (
	"time"

	"github.com/google/uuid"
)

// ManufacturerModel mirrors the 'manufacturers' table. PostgreSQL generates
// UUIDs via uuid_generate_v7(). Email, brand_name and tax_number each carry a
// unique constraint backing the registration checks.
type ManufacturerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	BrandName    string    `gorm:"type:varchar(100);unique;not null"`
	TaxNumber    string    `gorm:"type:varchar(64);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []ProductModel `gorm:"foreignKey:ManufacturerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ManufacturerModel) TableName() string {
	return "manufacturers"
}
