package queue

import (
	"context"
	"time"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueCatalogImport    = "catalog-import"
	QueueOrderStatus      = "order-status"
	QueueOrderPlaced      = "order-placed"
	QueueCatalogImportDLQ = "catalog-import-dlq"
	QueueOrderStatusDLQ   = "order-status-dlq"
	QueueOrderPlacedDLQ   = "order-placed-dlq"
)

const DefaultMaxRetries = 3

var Queues = []string{
	QueueCatalogImport,
	QueueOrderStatus,
	QueueOrderPlaced,
	QueueCatalogImportDLQ,
	QueueOrderStatusDLQ,
	QueueOrderPlacedDLQ,
}

func DLQName(queueName string) string {
	return queueName + "-dlq"
}

// retryDelay is the backoff before redelivery attempt n (0-based): 1s, 2s, 4s.
func retryDelay(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(1<<attempt)
}
