package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlacedOrder() *Order {
	return &Order{
		ID:               uuid.New(),
		ProductID:        uuid.New(),
		CustomerID:       uuid.New(),
		ManufacturerID:   uuid.New(),
		SoldAtPriceMinor: 249900,
		OrderStatus:      OrderStatusPlaced,
		ReturnStatus:     ReturnStatusNone,
		CreatedAt:        time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrder_ChangeStatus_StampsDeliveredAtOnDelivery(t *testing.T) {
	order := newPlacedOrder()
	now := time.Date(2025, 3, 5, 16, 30, 0, 0, time.UTC)

	require.NoError(t, order.ChangeStatus(OrderStatusShipped, now))
	assert.Nil(t, order.DeliveredAt)

	require.NoError(t, order.ChangeStatus(OrderStatusDelivered, now))
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, now, *order.DeliveredAt)
	assert.Equal(t, OrderStatusDelivered, order.OrderStatus)
}

func TestOrder_ChangeStatus_IntermediateTransitionsKeepDeliveredAtNil(t *testing.T) {
	order := newPlacedOrder()
	now := time.Now()

	for _, next := range []OrderStatus{OrderStatusShipped, OrderStatusOutForDelivery} {
		require.NoError(t, order.ChangeStatus(next, now))
		assert.Nil(t, order.DeliveredAt, "deliveredAt must stay nil until DELIVERED")
	}
}

func TestOrder_ChangeStatus_DeliveredIsTerminal(t *testing.T) {
	order := newPlacedOrder()
	now := time.Now()
	require.NoError(t, order.ChangeStatus(OrderStatusDelivered, now))
	stamped := *order.DeliveredAt

	err := order.ChangeStatus(OrderStatusShipped, now.Add(time.Hour))

	require.ErrorIs(t, err, ErrOrderDelivered)
	assert.Equal(t, OrderStatusDelivered, order.OrderStatus)
	assert.Equal(t, stamped, *order.DeliveredAt)
}

func TestOrder_ChangeStatus_CancelledIsTerminal(t *testing.T) {
	order := newPlacedOrder()
	now := time.Now()
	require.NoError(t, order.ChangeStatus(OrderStatusCancelled, now))

	err := order.ChangeStatus(OrderStatusDelivered, now)

	require.ErrorIs(t, err, ErrOrderCancelled)
	assert.Equal(t, OrderStatusCancelled, order.OrderStatus)
	assert.Nil(t, order.DeliveredAt)
}

func TestOrder_ChangeStatus_RejectsUnknownStatus(t *testing.T) {
	order := newPlacedOrder()

	err := order.ChangeStatus(OrderStatus("TELEPORTED"), time.Now())

	require.ErrorIs(t, err, ErrUnknownOrderStatus)
	assert.Equal(t, OrderStatusPlaced, order.OrderStatus)
}

func TestOrder_AcceptReturn_RequiresDeliveredAndRequested(t *testing.T) {
	tests := []struct {
		name         string
		orderStatus  OrderStatus
		returnStatus ReturnStatus
		wantErr      bool
	}{
		{name: "delivered and requested", orderStatus: OrderStatusDelivered, returnStatus: ReturnStatusRequested, wantErr: false},
		{name: "shipped and requested", orderStatus: OrderStatusShipped, returnStatus: ReturnStatusRequested, wantErr: true},
		{name: "delivered without request", orderStatus: OrderStatusDelivered, returnStatus: ReturnStatusNone, wantErr: true},
		{name: "already returned", orderStatus: OrderStatusDelivered, returnStatus: ReturnStatusReturned, wantErr: true},
		{name: "cancelled", orderStatus: OrderStatusCancelled, returnStatus: ReturnStatusNone, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := newPlacedOrder()
			order.OrderStatus = tt.orderStatus
			order.ReturnStatus = tt.returnStatus

			err := order.AcceptReturn()

			if tt.wantErr {
				require.ErrorIs(t, err, ErrReturnNotAcceptable)
				assert.Equal(t, tt.returnStatus, order.ReturnStatus, "return status must be unchanged on failure")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, ReturnStatusReturned, order.ReturnStatus)
		})
	}
}

func TestOrder_ReturnAvailable_WindowBoundary(t *testing.T) {
	window := 15 * 24 * time.Hour
	deliveredAt := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	order := newPlacedOrder()
	order.OrderStatus = OrderStatusDelivered
	order.DeliveredAt = &deliveredAt

	assert.True(t, order.ReturnAvailable(deliveredAt.Add(14*24*time.Hour+23*time.Hour), window),
		"one hour before expiry must still be returnable")
	assert.False(t, order.ReturnAvailable(deliveredAt.Add(window), window),
		"exactly at deliveredAt+window the return is no longer available")
	assert.False(t, order.ReturnAvailable(deliveredAt.Add(window+time.Second), window))
}

func TestOrder_ReturnAvailable_FalseWhenNotDelivered(t *testing.T) {
	order := newPlacedOrder()
	order.OrderStatus = OrderStatusShipped

	assert.False(t, order.ReturnAvailable(time.Now(), 15*24*time.Hour))
}

func TestOrder_InFlight(t *testing.T) {
	order := newPlacedOrder()
	assert.True(t, order.InFlight())

	order.OrderStatus = OrderStatusOutForDelivery
	assert.True(t, order.InFlight())

	order.OrderStatus = OrderStatusDelivered
	assert.False(t, order.InFlight())

	order.OrderStatus = OrderStatusCancelled
	assert.False(t, order.InFlight())
}

func TestCustomer_CreditBalance(t *testing.T) {
	customer := &Customer{ID: uuid.New(), BalanceMinor: 1500}

	customer.CreditBalance(249900)

	assert.Equal(t, int64(251400), customer.BalanceMinor)
}

func TestProduct_DisplayImage(t *testing.T) {
	product := &Product{ID: uuid.New()}
	assert.Empty(t, product.DisplayImage())

	product.Images = []ProductImage{
		{ImageName: "front.jpg", Position: 0},
		{ImageName: "back.jpg", Position: 1},
	}
	assert.Equal(t, "front.jpg", product.DisplayImage())
}
