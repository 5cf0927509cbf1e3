package service

import (
	"context"
	"testing"
	"time"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/queue"
	"github.com/Beka01247/menu-order/internal/store/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	sessions  *memory.SessionRepository
	audits    *memory.OrderStatusAuditRepository
	tasks     *memory.ImportTaskRepository
	catalogDB *memory.CatalogRepository
	store     *catalog.Store
	broker    *queue.MemoryBroker

	sessionService *SessionService
	cartService    *CartService
	orderService   *OrderService
	profileService *ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop().Sugar()
	store := catalog.NewStore()
	store.Replace(catalog.SampleItems())

	broker := queue.NewMemoryBroker(queue.DefaultMaxRetries, time.Millisecond)
	t.Cleanup(func() { _ = broker.Close() })

	env := &testEnv{
		sessions:  memory.NewSessionRepository(),
		audits:    memory.NewOrderStatusAuditRepository(),
		tasks:     memory.NewImportTaskRepository(),
		catalogDB: memory.NewCatalogRepository(nil),
		store:     store,
		broker:    broker,
	}
	storage := memory.NewStorage()

	env.sessionService = NewSessionService(env.sessions, logger)
	env.cartService = NewCartService(env.sessions, store, logger)
	env.orderService = NewOrderService(env.sessions, env.audits, broker, storage, logger)
	env.profileService = NewProfileService(env.sessions, store, logger)

	return env
}

func (e *testEnv) newSession(t *testing.T) string {
	t.Helper()
	session, err := e.sessionService.CreateSession(context.Background())
	require.NoError(t, err)
	return session.ID
}

// readyCart fills a session's cart with two burgers, an address and a payment
// method.
func (e *testEnv) readyCart(t *testing.T, sessionID string) {
	t.Helper()
	ctx := context.Background()

	_, err := e.cartService.AddItem(ctx, sessionID, catalog.ItemID("Classic Burger"), 2, "")
	require.NoError(t, err)
	_, err = e.cartService.SetDeliveryAddress(ctx, sessionID, testAddress(), false)
	require.NoError(t, err)
	_, err = e.cartService.SetPaymentMethod(ctx, sessionID, domain.PaymentCreditCard)
	require.NoError(t, err)
}

func testAddress() domain.Address {
	return domain.Address{
		Street:  "123 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
	}
}

func zapNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
