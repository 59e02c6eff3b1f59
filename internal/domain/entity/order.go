package entity

import (
	"time"

	"weavewhisper/internal/errors"

	"github.com/google/uuid"
)

// OrderStatus describes the fulfilment stage of a purchased item.
type OrderStatus string

const (
	// OrderStatusPlaced is the initial status of every new order.
	OrderStatusPlaced OrderStatus = "PLACED"
	// OrderStatusShipped means the manufacturer has handed the item to the carrier.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusOutForDelivery means the item is on its final delivery leg.
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	// OrderStatusDelivered is terminal; DeliveredAt is stamped on entry.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled is terminal.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ReturnStatus describes the post-delivery return lifecycle of an order.
type ReturnStatus string

const (
	// ReturnStatusNone means no return has been requested.
	ReturnStatusNone ReturnStatus = "NONE"
	// ReturnStatusRequested means the customer asked to return the item.
	ReturnStatusRequested ReturnStatus = "REQUESTED"
	// ReturnStatusReturned means the manufacturer accepted the return and the
	// customer was refunded.
	ReturnStatusReturned ReturnStatus = "RETURNED"
)

// State machine violations surfaced by Order methods. The use case layer maps
// them onto the typed application errors.
var (
	// ErrOrderDelivered is returned when mutating an already delivered order.
	ErrOrderDelivered = errors.New("cannot change status of a delivered order")
	// ErrOrderCancelled is returned when mutating an already cancelled order.
	ErrOrderCancelled = errors.New("cannot change status of a cancelled order")
	// ErrUnknownOrderStatus is returned for a status outside the lifecycle vocabulary.
	ErrUnknownOrderStatus = errors.New("unknown order status")
	// ErrReturnNotAcceptable is returned when accepting a return that is not in
	// the DELIVERED + REQUESTED state pair.
	ErrReturnNotAcceptable = errors.New("cannot change return status of an undelivered or unrequested order")
)

// Order represents one purchased unit of a product. It is the audit record of a
// sale: orders reference product, customer and manufacturer by id and are never
// deleted, even when the referenced manufacturer or product disappears.
type Order struct {
	ID               uuid.UUID
	ProductID        uuid.UUID
	CustomerID       uuid.UUID
	ManufacturerID   uuid.UUID
	SoldAtPriceMinor int64 // Sale price at purchase time, in minor currency units.
	OrderStatus      OrderStatus
	ReturnStatus     ReturnStatus
	CreatedAt        time.Time
	DeliveredAt      *time.Time // Set iff OrderStatus is DELIVERED.
}

// Valid reports whether s is part of the order lifecycle vocabulary.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusShipped, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further order-status transition is permitted.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// InFlight reports whether the order still needs fulfilment work from the
// manufacturer, i.e. it has not reached a terminal status.
func (o *Order) InFlight() bool {
	return !o.OrderStatus.Terminal()
}

// ChangeStatus transitions the order to next. Terminal states reject any
// further transition; transitioning into DELIVERED stamps DeliveredAt with now.
func (o *Order) ChangeStatus(next OrderStatus, now time.Time) error {
	if !next.Valid() {
		return errors.Wrapf(ErrUnknownOrderStatus, "status %q", next)
	}

	switch o.OrderStatus {
	case OrderStatusDelivered:
		return ErrOrderDelivered
	case OrderStatusCancelled:
		return ErrOrderCancelled
	}

	o.OrderStatus = next
	if next == OrderStatusDelivered {
		deliveredAt := now
		o.DeliveredAt = &deliveredAt
	}

	return nil
}

// ReturnPending reports whether the order awaits a return decision from the
// manufacturer.
func (o *Order) ReturnPending() bool {
	return o.OrderStatus == OrderStatusDelivered && o.ReturnStatus == ReturnStatusRequested
}

// AcceptReturn marks a requested return as completed. It only validates and
// flips the return status; crediting the refund to the customer balance is the
// use case's responsibility, inside the same transaction.
func (o *Order) AcceptReturn() error {
	if !o.ReturnPending() {
		return ErrReturnNotAcceptable
	}

	o.ReturnStatus = ReturnStatusReturned

	return nil
}

// ReturnAvailable reports whether the customer may still open a return: the
// order is delivered and now is strictly before DeliveredAt + window.
func (o *Order) ReturnAvailable(now time.Time, window time.Duration) bool {
	if o.OrderStatus != OrderStatusDelivered || o.DeliveredAt == nil {
		return false
	}

	return now.Before(o.DeliveredAt.Add(window))
}
