package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type recordingProcessor struct {
	mu     sync.Mutex
	events []domain.OrderStatusEvent
	tasks  []primitive.ObjectID
	err    error
	done   chan struct{}
}

func newRecordingProcessor(err error) *recordingProcessor {
	return &recordingProcessor{err: err, done: make(chan struct{}, 16)}
}

func (p *recordingProcessor) ProcessStatusEvent(ctx context.Context, event domain.OrderStatusEvent) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
	p.done <- struct{}{}
	return p.err
}

func (p *recordingProcessor) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	p.mu.Lock()
	p.tasks = append(p.tasks, taskID)
	p.mu.Unlock()
	p.done <- struct{}{}
	return p.err
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("message was not processed")
	}
}

func TestOrderStatusWorker_ProcessesEvents(t *testing.T) {
	broker := queue.NewMemoryBroker(queue.DefaultMaxRetries, time.Millisecond)
	defer broker.Close()
	processor := newRecordingProcessor(nil)
	w := NewOrderStatusWorker(processor, broker, zap.NewNop().Sugar())
	require.NoError(t, w.Start())
	defer w.Stop()

	body, err := json.Marshal(domain.OrderStatusEvent{
		SessionID:   "s-1",
		OrderNumber: "#25040812001234",
		NewStatus:   domain.StatusReadyForPickup,
	})
	require.NoError(t, err)
	require.NoError(t, broker.Publish(context.Background(), queue.QueueOrderStatus, body))

	waitFor(t, processor.done)

	processor.mu.Lock()
	defer processor.mu.Unlock()
	require.Len(t, processor.events, 1)
	assert.Equal(t, domain.StatusReadyForPickup, processor.events[0].NewStatus)
	assert.False(t, processor.events[0].Timestamp.IsZero())
}

func TestOrderStatusWorker_BadPayloadGoesToDLQ(t *testing.T) {
	broker := queue.NewMemoryBroker(0, time.Millisecond)
	defer broker.Close()
	w := NewOrderStatusWorker(newRecordingProcessor(nil), broker, zap.NewNop().Sugar())
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, broker.Publish(context.Background(), queue.QueueOrderStatus, []byte("not json")))

	assert.Eventually(t, func() bool {
		return broker.Pending(queue.QueueOrderStatusDLQ) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestCatalogImportWorker_ProcessesTasks(t *testing.T) {
	broker := queue.NewMemoryBroker(queue.DefaultMaxRetries, time.Millisecond)
	defer broker.Close()
	processor := newRecordingProcessor(nil)
	w := NewCatalogImportWorker(processor, broker, zap.NewNop().Sugar())
	require.NoError(t, w.Start())
	defer w.Stop()

	taskID := primitive.NewObjectID()
	body, err := json.Marshal(domain.CatalogImportMessage{TaskID: taskID.Hex(), SpreadsheetID: "sheet-1"})
	require.NoError(t, err)
	require.NoError(t, broker.Publish(context.Background(), queue.QueueCatalogImport, body))

	waitFor(t, processor.done)

	processor.mu.Lock()
	defer processor.mu.Unlock()
	assert.Equal(t, []primitive.ObjectID{taskID}, processor.tasks)
}

func TestCatalogImportWorker_RetriesFailures(t *testing.T) {
	broker := queue.NewMemoryBroker(1, time.Millisecond)
	defer broker.Close()
	processor := newRecordingProcessor(errors.New("sheet unavailable"))
	w := NewCatalogImportWorker(processor, broker, zap.NewNop().Sugar())
	require.NoError(t, w.Start())
	defer w.Stop()

	body, err := json.Marshal(domain.CatalogImportMessage{TaskID: primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	require.NoError(t, broker.Publish(context.Background(), queue.QueueCatalogImport, body))

	waitFor(t, processor.done)
	waitFor(t, processor.done)

	assert.Eventually(t, func() bool {
		return broker.Pending(queue.QueueCatalogImportDLQ) == 1
	}, time.Second, 5*time.Millisecond)
}
