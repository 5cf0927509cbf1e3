package domain

import (
	"errors"
	"fmt"
)

type OrderStatus string

const (
	StatusCart           OrderStatus = "cart"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCompleted      OrderStatus = "completed"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// transitions lists the forward moves allowed after checkout. cart -> preparing
// is reachable only through Order.Checkout.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPreparing:      {StatusReadyForPickup, StatusOutForDelivery},
	StatusReadyForPickup: {StatusDelivered, StatusCompleted},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {StatusCompleted},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCart, StatusPreparing, StatusReadyForPickup, StatusOutForDelivery, StatusDelivered, StatusCompleted:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted
}

// Label is the human readable form shown to customers.
func (s OrderStatus) Label() string {
	switch s {
	case StatusCart:
		return "Cart"
	case StatusPreparing:
		return "Preparing"
	case StatusReadyForPickup:
		return "Ready for Pickup"
	case StatusOutForDelivery:
		return "Out for Delivery"
	case StatusDelivered:
		return "Delivered"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Advance applies an operator driven status update to a placed order.
func (o *Order) Advance(to OrderStatus) error {
	if !CanTransition(o.Status, to) {
		return &TransitionError{From: o.Status, To: to}
	}
	o.Status = to
	return nil
}
