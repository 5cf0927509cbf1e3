package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/queue"
	"go.uber.org/zap"
)

// StatusEventProcessor applies queued order status changes.
type StatusEventProcessor interface {
	ProcessStatusEvent(ctx context.Context, event domain.OrderStatusEvent) error
}

type OrderStatusWorker struct {
	orders StatusEventProcessor
	broker queue.Broker
	logger *zap.SugaredLogger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewOrderStatusWorker(
	orders StatusEventProcessor,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderStatusWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderStatusWorker{
		orders: orders,
		broker: broker,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (w *OrderStatusWorker) Start() error {
	w.logger.Info("starting order status worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderStatus, w.handleMessage)
}

func (w *OrderStatusWorker) Stop() {
	w.logger.Info("stopping order status worker")
	w.cancel()
}

func (w *OrderStatusWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderStatusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing order status event", "order_number", event.OrderNumber, "new_status", event.NewStatus)

	if err := w.orders.ProcessStatusEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process order status event", "order_number", event.OrderNumber, "error", err)
		return err
	}

	return nil
}
