package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a listing published by a manufacturer. Deleting a manufacturer's
// listings removes products, but never the orders that reference them.
type Product struct {
	ID             uuid.UUID
	ManufacturerID uuid.UUID
	Name           string
	PriceMinor     int64 // Listed price in minor currency units.
	Images         []ProductImage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductImage is one image attached to a product. Images keep their upload
// order; the first one is the display image used in order views.
type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	ImageName string
	Position  int
}

// DisplayImage returns the name of the product's first image, or "" when the
// product has no images.
func (p *Product) DisplayImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0].ImageName
}
