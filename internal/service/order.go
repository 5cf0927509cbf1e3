package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/metrics"
	"github.com/Beka01247/menu-order/internal/queue"
	"github.com/Beka01247/menu-order/internal/repo"
	"go.uber.org/zap"
)

type OrderService struct {
	sessionRepo repo.SessionRepository
	auditRepo   repo.OrderStatusAuditRepository
	broker      queue.Broker
	storage     repo.Storage
	logger      *zap.SugaredLogger
	now         func() time.Time
}

func NewOrderService(
	sessionRepo repo.SessionRepository,
	auditRepo repo.OrderStatusAuditRepository,
	broker queue.Broker,
	storage repo.Storage,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
		broker:      broker,
		storage:     storage,
		logger:      logger,
		now:         time.Now,
	}
}

type CheckoutResult struct {
	Order        *domain.Order
	History      domain.HistoricalOrder
	PointsEarned int
}

// Checkout places the session's cart, archives it into the profile history and
// starts a fresh cart that keeps the address and payment selection. A rejected
// checkout leaves the cart untouched.
func (s *OrderService) Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	var (
		result *CheckoutResult
		event  domain.OrderPlacedEvent
	)

	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		placed, err := session.CheckoutCart()
		if err != nil {
			return err
		}

		now := s.now()
		history := session.Profile.ArchiveOrder(placed, now)
		session.Placed = append(session.Placed, placed)
		session.StartNewCart()

		result = &CheckoutResult{
			Order:        placed.Clone(),
			History:      history,
			PointsEarned: domain.LoyaltyPointsFor(placed.Subtotal()),
		}
		event = domain.OrderPlacedEvent{
			EventType:     domain.EventOrderPlaced,
			SessionID:     sessionID,
			OrderNumber:   placed.OrderNumber,
			ItemCount:     placed.ItemCount(),
			Total:         placed.Total().StringFixed(2),
			PaymentMethod: *placed.PaymentMethod,
			Address:       placed.DeliveryAddress.Formatted(),
			Timestamp:     now,
		}
		return nil
	})
	if err != nil {
		metrics.RecordCheckout("rejected")
		s.logger.Infow("checkout rejected", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("failed to checkout: %w", err)
	}

	metrics.RecordCheckout("placed")
	metrics.RecordLoyaltyPoints(result.PointsEarned)

	s.logger.Infow("order placed",
		"session_id", sessionID,
		"order_number", result.Order.OrderNumber,
		"total", event.Total,
		"loyalty_points", result.PointsEarned,
	)

	// the order is already placed; a lost notification must not undo it
	if err := s.publish(ctx, queue.QueueOrderPlaced, event); err != nil {
		s.logger.Errorw("failed to publish order placed event", "order_number", event.OrderNumber, "error", err)
	}

	return result, nil
}

// ListOrders returns snapshots of the session's placed orders, oldest first.
func (s *OrderService) ListOrders(ctx context.Context, sessionID string) ([]*domain.Order, error) {
	orders := []*domain.Order{}
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		for _, order := range session.Placed {
			orders = append(orders, order.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, sessionID, orderNumber string) (*domain.Order, error) {
	var order *domain.Order
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		placed, ok := session.PlacedOrder(orderNumber)
		if !ok {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, orderNumber)
		}
		order = placed.Clone()
		return nil
	})
	return order, err
}

// RequestStatusChange validates the move against the order's current status
// and queues it. The order itself changes when the event is processed.
func (s *OrderService) RequestStatusChange(ctx context.Context, sessionID, orderNumber string, newStatus domain.OrderStatus, reason, userID string) (*domain.OrderStatusEvent, error) {
	var event domain.OrderStatusEvent
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		order, ok := session.PlacedOrder(orderNumber)
		if !ok {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, orderNumber)
		}
		if !domain.CanTransition(order.Status, newStatus) {
			return &domain.TransitionError{From: order.Status, To: newStatus}
		}

		event = domain.OrderStatusEvent{
			EventType:   domain.EventOrderStatusChanged,
			SessionID:   sessionID,
			OrderNumber: orderNumber,
			OldStatus:   order.Status,
			NewStatus:   newStatus,
			Reason:      reason,
			UserID:      userID,
			Timestamp:   s.now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, queue.QueueOrderStatus, event); err != nil {
		s.logger.Errorw("failed to publish status change event", "order_number", orderNumber, "error", err)
		return nil, fmt.Errorf("failed to publish event: %w", err)
	}

	s.logger.Infow("order status change queued", "session_id", sessionID, "order_number", orderNumber, "old_status", event.OldStatus, "new_status", newStatus)

	return &event, nil
}

// ProcessStatusEvent applies a queued status change and records it in the
// audit log. Redelivery of an event that was already applied is a no-op.
func (s *OrderService) ProcessStatusEvent(ctx context.Context, event domain.OrderStatusEvent) error {
	return withSession(ctx, s.sessionRepo, event.SessionID, func(session *domain.Session) error {
		order, ok := session.PlacedOrder(event.OrderNumber)
		if !ok {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, event.OrderNumber)
		}

		if order.Status == event.NewStatus {
			s.logger.Infow("order status already applied", "order_number", event.OrderNumber, "status", event.NewStatus)
			return nil
		}

		oldStatus := order.Status
		if !domain.CanTransition(oldStatus, event.NewStatus) {
			return &domain.TransitionError{From: oldStatus, To: event.NewStatus}
		}

		audit := &domain.OrderStatusAudit{
			SessionID:   event.SessionID,
			OrderNumber: event.OrderNumber,
			EventType:   event.EventType,
			OldStatus:   oldStatus,
			NewStatus:   event.NewStatus,
			Reason:      event.Reason,
			UserID:      event.UserID,
			Timestamp:   event.Timestamp,
		}

		err := s.storage.WithTransaction(ctx, func(ctx context.Context) error {
			if err := s.auditRepo.Create(ctx, audit); err != nil {
				return fmt.Errorf("failed to create audit record: %w", err)
			}
			return nil
		})
		if err != nil {
			s.logger.Errorw("failed to record status change", "order_number", event.OrderNumber, "error", err)
			return err
		}

		if err := order.Advance(event.NewStatus); err != nil {
			return err
		}

		metrics.RecordStatusTransition(string(event.NewStatus))
		s.logger.Infow("order status updated", "session_id", event.SessionID, "order_number", event.OrderNumber, "old_status", oldStatus, "new_status", event.NewStatus)

		return nil
	})
}

func (s *OrderService) GetOrderAudit(ctx context.Context, sessionID, orderNumber string, limit int) ([]domain.OrderStatusAudit, error) {
	if _, err := s.GetOrder(ctx, sessionID, orderNumber); err != nil {
		return nil, err
	}

	audits, err := s.auditRepo.GetByOrderNumber(ctx, orderNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get order audit: %w", err)
	}

	// order numbers are only unique per session
	result := []domain.OrderStatusAudit{}
	for _, audit := range audits {
		if audit.SessionID == sessionID {
			result = append(result, audit)
		}
	}

	return result, nil
}

func (s *OrderService) publish(ctx context.Context, queueName string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return s.broker.Publish(ctx, queueName, body)
}
