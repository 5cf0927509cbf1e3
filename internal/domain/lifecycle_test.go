package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T) *Order {
	t.Helper()

	o := NewOrder()
	o.AddItem(testItem("burger", "Classic Burger", "9.99"), 1)
	o.SetDeliveryAddress(Address{Street: "123 Main St"})
	o.SetPaymentMethod(PaymentApplePay)
	require.NoError(t, o.Checkout())
	return o
}

func TestAdvance_DeliveryPath(t *testing.T) {
	o := placedOrder(t)

	require.NoError(t, o.Advance(StatusOutForDelivery))
	require.NoError(t, o.Advance(StatusDelivered))
	require.NoError(t, o.Advance(StatusCompleted))

	assert.True(t, o.Status.Terminal())
}

func TestAdvance_PickupPath(t *testing.T) {
	o := placedOrder(t)

	require.NoError(t, o.Advance(StatusReadyForPickup))
	require.NoError(t, o.Advance(StatusCompleted))
}

func TestAdvance_RejectsInvalidMoves(t *testing.T) {
	tests := []struct {
		name string
		path []OrderStatus
		to   OrderStatus
	}{
		{"back to cart", nil, StatusCart},
		{"skip to delivered", nil, StatusDelivered},
		{"backwards", []OrderStatus{StatusOutForDelivery}, StatusPreparing},
		{"same status", []OrderStatus{StatusOutForDelivery}, StatusOutForDelivery},
		{"after completed", []OrderStatus{StatusReadyForPickup, StatusCompleted}, StatusDelivered},
		{"delivery skips delivered", []OrderStatus{StatusOutForDelivery}, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := placedOrder(t)
			for _, step := range tt.path {
				require.NoError(t, o.Advance(step))
			}
			before := o.Status

			err := o.Advance(tt.to)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))
			var transitionErr *TransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, before, transitionErr.From)
			assert.Equal(t, tt.to, transitionErr.To)
			assert.Equal(t, before, o.Status)
		})
	}
}

func TestAdvance_CartCannotSkipCheckout(t *testing.T) {
	o := NewOrder()

	err := o.Advance(StatusPreparing)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusCart, o.Status)
	assert.Empty(t, o.OrderNumber)
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "Ready for Pickup", StatusReadyForPickup.Label())
	assert.Equal(t, "Out for Delivery", StatusOutForDelivery.Label())
	assert.False(t, OrderStatus("lost").Valid())
}
