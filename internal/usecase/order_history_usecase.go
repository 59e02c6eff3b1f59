package usecase

import (
	"context"
	"time"

	"weavewhisper/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderHistoryView is one row of a customer's purchase history.
type OrderHistoryView struct {
	OrderID          uuid.UUID           `json:"order_id"`
	ProductID        uuid.UUID           `json:"product_id"`
	Name             string              `json:"name"`
	ImageName        string              `json:"image_name"`
	BrandName        string              `json:"brand_name,omitempty"` // Empty when the manufacturer no longer exists.
	SoldAtPriceMinor int64               `json:"sold_at_price_minor"`
	OrderStatus      entity.OrderStatus  `json:"order_status"`
	ReturnStatus     entity.ReturnStatus `json:"return_status"`
	OrderDate        time.Time           `json:"order_date"`
	DeliveryDate     *time.Time          `json:"delivery_date,omitempty"` // Present only for delivered orders.
	ReturnAvailable  bool                `json:"return_available"`
}

// OrderHistoryUsecase defines the interface for customer order history retrieval.
type OrderHistoryUsecase interface {
	// GetCustomerOrderHistory returns all orders of the customer, newest first,
	// each annotated with whether a return can still be opened.
	GetCustomerOrderHistory(ctx context.Context, customerID uuid.UUID) ([]*OrderHistoryView, error)
}
