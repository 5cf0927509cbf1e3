package service

import (
	"context"
	"time"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/metrics"
	"github.com/Beka01247/menu-order/internal/repo"
	"go.uber.org/zap"
)

type CartService struct {
	sessionRepo repo.SessionRepository
	catalog     *catalog.Store
	logger      *zap.SugaredLogger
}

func NewCartService(
	sessionRepo repo.SessionRepository,
	catalog *catalog.Store,
	logger *zap.SugaredLogger,
) *CartService {
	return &CartService{
		sessionRepo: sessionRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// LineUpdate changes the fields that are set.
type LineUpdate struct {
	Quantity            *int
	SpecialInstructions *string
}

// CartDetails changes the order-level fields that are set. ClearDeliveryTime
// drops a previously requested time.
type CartDetails struct {
	SpecialInstructions   *string
	RequestedDeliveryTime *time.Time
	ClearDeliveryTime     bool
}

// GetCart returns a snapshot of the session's cart.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Order, error) {
	var cart *domain.Order
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		cart = session.Cart.Clone()
		return nil
	})
	return cart, err
}

func (s *CartService) AddItem(ctx context.Context, sessionID, itemID string, quantity int, instructions string) (*domain.Order, error) {
	item, err := lookupItem(s.catalog, itemID)
	if err != nil {
		return nil, err
	}

	var cart *domain.Order
	err = withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		line := session.Cart.AddItem(item, quantity)
		if instructions != "" {
			session.Cart.SetLineInstructions(line.ID, instructions)
		}
		cart = session.Cart.Clone()

		s.logger.Infow("item added to cart", "session_id", sessionID, "item_id", itemID, "line_id", line.ID, "quantity", quantity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCartMutation("add")
	return cart, nil
}

// UpdateLine and RemoveItem ignore unknown line ids and return the cart as is.
func (s *CartService) UpdateLine(ctx context.Context, sessionID, lineID string, update LineUpdate) (*domain.Order, error) {
	var cart *domain.Order
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		if update.Quantity != nil {
			session.Cart.UpdateQuantity(lineID, *update.Quantity)
		}
		if update.SpecialInstructions != nil {
			session.Cart.SetLineInstructions(lineID, *update.SpecialInstructions)
		}
		cart = session.Cart.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCartMutation("update")
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*domain.Order, error) {
	var cart *domain.Order
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		session.Cart.RemoveItem(lineID)
		cart = session.Cart.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCartMutation("remove")
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (*domain.Order, error) {
	var cart *domain.Order
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		session.Cart.Clear()
		cart = session.Cart.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCartMutation("clear")
	s.logger.Infow("cart cleared", "session_id", sessionID)
	return cart, nil
}

// SetDeliveryAddress selects the address for the cart and, when save is set,
// also keeps it in the profile's saved addresses.
func (s *CartService) SetDeliveryAddress(ctx context.Context, sessionID string, address domain.Address, save bool) (*domain.Order, error) {
	var cart *domain.Order
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		if save {
			session.Profile.SaveAddress(address)
			address.IsSaved = true
		}
		session.Cart.SetDeliveryAddress(address)
		cart = session.Cart.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCartMutation("address")
	return cart, nil
}

func (s *CartService) SetPaymentMethod(ctx context.Context, sessionID string, method domain.PaymentMethod) (*domain.Order, error) {
	var cart *domain.Order
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		session.Cart.SetPaymentMethod(method)
		cart = session.Cart.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCartMutation("payment")
	return cart, nil
}

func (s *CartService) SetDetails(ctx context.Context, sessionID string, details CartDetails) (*domain.Order, error) {
	var cart *domain.Order
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		if details.SpecialInstructions != nil {
			session.Cart.SpecialInstructions = *details.SpecialInstructions
		}
		switch {
		case details.ClearDeliveryTime:
			session.Cart.RequestedDeliveryTime = nil
		case details.RequestedDeliveryTime != nil:
			at := *details.RequestedDeliveryTime
			session.Cart.RequestedDeliveryTime = &at
		}
		cart = session.Cart.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCartMutation("details")
	return cart, nil
}
