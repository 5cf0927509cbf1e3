package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrBrokerClosed = errors.New("broker closed")

const memoryQueueSize = 1024

type envelope struct {
	body    []byte
	retries int
	lastErr error
}

// MemoryBroker is an in-process Broker with the same retry and dead letter
// behaviour as RabbitMQBroker. Messages are lost on restart. A full queue
// that nobody consumes drops its oldest message to make room.
type MemoryBroker struct {
	mu         sync.Mutex
	queues     map[string]chan envelope
	consumed   map[string]bool
	logger     *zap.SugaredLogger
	maxRetries int
	retryDelay time.Duration
	closed     bool
	done       chan struct{}
}

func NewMemoryBroker(maxRetries int, retryDelay time.Duration) *MemoryBroker {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &MemoryBroker{
		queues:     make(map[string]chan envelope),
		consumed:   make(map[string]bool),
		logger:     zap.NewNop().Sugar(),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		done:       make(chan struct{}),
	}
}

// WithLogger sets the logger used for dropped and undeliverable messages.
func (b *MemoryBroker) WithLogger(logger *zap.SugaredLogger) *MemoryBroker {
	b.logger = logger
	return b
}

func (b *MemoryBroker) queue(name string) (chan envelope, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBrokerClosed
	}
	q, ok := b.queues[name]
	if !ok {
		q = make(chan envelope, memoryQueueSize)
		b.queues[name] = q
	}
	return q, nil
}

func (b *MemoryBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return b.enqueue(ctx, queueName, envelope{body: append([]byte(nil), message...)})
}

func (b *MemoryBroker) enqueue(ctx context.Context, queueName string, env envelope) error {
	q, err := b.queue(queueName)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	select {
	case q <- env:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to publish message: %w", ctx.Err())
	default:
	}

	if b.hasConsumer(queueName) {
		return fmt.Errorf("failed to publish message: queue %s is full", queueName)
	}

	select {
	case <-q:
		b.logger.Warnw("dropped oldest message from unconsumed queue", "queue", queueName)
	default:
	}

	select {
	case q <- env:
		return nil
	default:
		return fmt.Errorf("failed to publish message: queue %s is full", queueName)
	}
}

func (b *MemoryBroker) hasConsumer(queueName string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.consumed[queueName]
}

// Subscribe consumes until ctx is cancelled or the broker is closed. Only one
// subscriber per queue is expected.
func (b *MemoryBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	q, err := b.queue(queueName)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	b.mu.Lock()
	b.consumed[queueName] = true
	b.mu.Unlock()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case env := <-q:
				b.handleMessage(ctx, queueName, env, handler)
			}
		}
	}()

	return nil
}

func (b *MemoryBroker) handleMessage(ctx context.Context, queueName string, env envelope, handler MessageHandler) {
	err := handler(ctx, env.body)
	if err == nil {
		return
	}

	if env.retries < b.maxRetries {
		delay := retryDelay(b.retryDelay, env.retries)
		env.retries++
		env.lastErr = err
		go func() {
			select {
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case <-time.After(delay):
			}
			if err := b.enqueue(ctx, queueName, env); err != nil {
				b.logger.Errorw("failed to requeue message", "queue", queueName, "retries", env.retries, "error", err)
			}
		}()
		return
	}

	env.lastErr = err
	if err := b.enqueue(ctx, DLQName(queueName), env); err != nil {
		b.logger.Errorw("failed to dead letter message", "queue", queueName, "last_error", env.lastErr, "error", err)
	}
}

// Pending reports the number of undelivered messages on a queue.
func (b *MemoryBroker) Pending(queueName string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queues[queueName])
}

func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.done)
	}
	return nil
}
