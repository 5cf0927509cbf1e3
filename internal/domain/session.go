package domain

import (
	"sync"
	"time"
)

// Session is one user's isolated state: the cart being edited, the profile and
// the placed orders still moving through the lifecycle. Callers hold the lock
// for the whole read-modify-write.
type Session struct {
	sync.Mutex

	ID        string
	Cart      *Order
	Profile   *Profile
	Placed    []*Order
	CreatedAt time.Time
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Cart:      NewOrder(),
		Profile:   NewProfile(),
		Placed:    []*Order{},
		CreatedAt: now,
	}
}

func (s *Session) PlacedOrder(orderNumber string) (*Order, bool) {
	for _, order := range s.Placed {
		if order.OrderNumber == orderNumber {
			return order, true
		}
	}
	return nil, false
}

// CheckoutCart checks out the cart and redraws its order number until it is
// unique among the session's placed orders.
func (s *Session) CheckoutCart() (*Order, error) {
	placed := s.Cart
	if err := placed.Checkout(); err != nil {
		return nil, err
	}
	for {
		if _, taken := s.PlacedOrder(placed.OrderNumber); !taken {
			break
		}
		placed.OrderNumber = placed.nextOrderNumber()
	}
	return placed, nil
}

// StartNewCart replaces the cart with an empty one that keeps the previous
// delivery address and payment selection.
func (s *Session) StartNewCart() {
	next := NewOrder()
	next.DeliveryAddress = s.Cart.DeliveryAddress
	next.PaymentMethod = s.Cart.PaymentMethod
	s.Cart = next
}
