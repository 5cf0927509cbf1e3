package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/queue"
	"github.com/Beka01247/menu-order/internal/ratelimiter"
	"github.com/Beka01247/menu-order/internal/service"
	"github.com/Beka01247/menu-order/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T, cfg config) *application {
	t.Helper()

	logger := zap.NewNop().Sugar()
	storage := memory.NewStorage()
	sessions := memory.NewSessionRepository()
	store := catalog.NewStore()

	broker := queue.NewMemoryBroker(queue.DefaultMaxRetries, time.Millisecond)
	t.Cleanup(func() { _ = broker.Close() })

	if cfg.rateLimiter.RequestsPerTimeFrame == 0 {
		cfg.rateLimiter = ratelimiter.Config{RequestsPerTimeFrame: 20, TimeFrame: 5 * time.Second}
	}

	orderService := service.NewOrderService(sessions, memory.NewOrderStatusAuditRepository(), broker, storage, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		rateLimiter:    ratelimiter.NewTokenBucketLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		storage:        storage,
		broker:         broker,
		catalog:        store,
		catalogLoader:  catalog.SampleLoader{},
		sessionService: service.NewSessionService(sessions, logger),
		cartService:    service.NewCartService(sessions, store, logger),
		orderService:   orderService,
		profileService: service.NewProfileService(sessions, store, logger),
		importService: service.NewImportService(
			memory.NewImportTaskRepository(),
			memory.NewCatalogRepository(nil),
			nil,
			store,
			broker,
			storage,
			logger,
		),
	}
}

func newLoadedApplication(t *testing.T) *application {
	t.Helper()
	app := newTestApplication(t, config{})
	app.catalog.Replace(catalog.SampleItems())
	return app
}

func executeRequest(t *testing.T, mux http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

// decodeData unwraps the {"data": ...} envelope.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dst))
}

func createSession(t *testing.T, mux http.Handler) string {
	t.Helper()
	rr := executeRequest(t, mux, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp CreateSessionResponse
	decodeData(t, rr, &resp)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestHealthCheck(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "loading", resp.Services["catalog"])
}

func TestMenu_LoadingReturns503(t *testing.T) {
	app := newTestApplication(t, config{})
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodGet, "/api/v1/menu", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "catalog is loading")
}

func TestMenu_Queries(t *testing.T) {
	mux := newLoadedApplication(t).mount()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "all", query: "", want: 12},
		{name: "category", query: "?category=dessert", want: 2},
		{name: "popular", query: "?popular=true", want: 4},
		{name: "search", query: "?q=salad", want: 2},
		{name: "search is case insensitive", query: "?q=CHOCOLATE", want: 2},
		{name: "combined", query: "?category=beverage&q=iced", want: 1},
		{name: "no match", query: "?q=sushi", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeRequest(t, mux, http.MethodGet, "/api/v1/menu"+tt.query, nil)
			require.Equal(t, http.StatusOK, rr.Code)

			var items []map[string]any
			decodeData(t, rr, &items)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestMenu_BadFilters(t *testing.T) {
	mux := newLoadedApplication(t).mount()

	rr := executeRequest(t, mux, http.MethodGet, "/api/v1/menu?category=soups", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = executeRequest(t, mux, http.MethodGet, "/api/v1/menu?popular=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMenu_CategoriesAndItem(t *testing.T) {
	mux := newLoadedApplication(t).mount()

	rr := executeRequest(t, mux, http.MethodGet, "/api/v1/menu/categories", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var categories []CategoryResponse
	decodeData(t, rr, &categories)
	require.Len(t, categories, 5)
	assert.Equal(t, "Starters", string(categories[0].Name))

	rr = executeRequest(t, mux, http.MethodGet, "/api/v1/menu/"+catalog.ItemID("Apple Pie"), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var item map[string]any
	decodeData(t, rr, &item)
	assert.Equal(t, "Apple Pie", item["name"])
	assert.Equal(t, "6.99", item["price"])

	rr = executeRequest(t, mux, http.MethodGet, "/api/v1/menu/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCart_Flow(t *testing.T) {
	mux := newLoadedApplication(t).mount()
	sessionID := createSession(t, mux)
	base := "/api/v1/sessions/" + sessionID

	rr := executeRequest(t, mux, http.MethodPost, base+"/cart/items", map[string]any{
		"item_id":  catalog.ItemID("Classic Burger"),
		"quantity": 2,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var cart OrderResponse
	decodeData(t, rr, &cart)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "19.98", cart.Subtotal)
	assert.Equal(t, "1.60", cart.Tax)
	assert.Equal(t, "3.99", cart.DeliveryFee)
	assert.Equal(t, "25.57", cart.Total)
	assert.Equal(t, 30, cart.EstimatedDeliveryMinutes)
	assert.ElementsMatch(t, []string{"delivery address is not set", "payment method is not set"}, cart.CheckoutIssues)

	lineID := cart.Lines[0].ID
	rr = executeRequest(t, mux, http.MethodPatch, base+"/cart/items/"+lineID, map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &cart)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	rr = executeRequest(t, mux, http.MethodPatch, base+"/cart/items/"+lineID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = executeRequest(t, mux, http.MethodDelete, base+"/cart/items/"+lineID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &cart)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, "0.00", cart.Total)
}

func TestCart_UnknownLineIsNoOp(t *testing.T) {
	mux := newLoadedApplication(t).mount()
	sessionID := createSession(t, mux)
	base := "/api/v1/sessions/" + sessionID

	rr := executeRequest(t, mux, http.MethodPost, base+"/cart/items", map[string]any{
		"item_id":  catalog.ItemID("Iced Tea"),
		"quantity": 2,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = executeRequest(t, mux, http.MethodPatch, base+"/cart/items/never-there", map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, rr.Code)
	var cart OrderResponse
	decodeData(t, rr, &cart)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	rr = executeRequest(t, mux, http.MethodDelete, base+"/cart/items/never-there", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &cart)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Validation(t *testing.T) {
	mux := newLoadedApplication(t).mount()
	sessionID := createSession(t, mux)
	base := "/api/v1/sessions/" + sessionID

	tests := []struct {
		name string
		path string
		body any
		want int
	}{
		{name: "zero quantity", path: "/cart/items", body: map[string]any{"item_id": catalog.ItemID("Iced Tea"), "quantity": 0}, want: http.StatusBadRequest},
		{name: "missing item", path: "/cart/items", body: map[string]any{"quantity": 1}, want: http.StatusBadRequest},
		{name: "unknown item", path: "/cart/items", body: map[string]any{"item_id": "missing"}, want: http.StatusNotFound},
		{name: "unknown field", path: "/cart/items", body: map[string]any{"item": "x"}, want: http.StatusBadRequest},
		{name: "unknown payment", path: "/cart/payment", body: map[string]any{"method": "Cash"}, want: http.StatusBadRequest},
		{name: "incomplete address", path: "/cart/address", body: map[string]any{"street": "1 Elm St"}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := http.MethodPost
			if strings.HasSuffix(tt.path, "payment") || strings.HasSuffix(tt.path, "address") {
				method = http.MethodPut
			}
			rr := executeRequest(t, mux, method, base+tt.path, tt.body)
			assert.Equal(t, tt.want, rr.Code)
		})
	}

	rr := executeRequest(t, mux, http.MethodGet, "/api/v1/sessions/missing/cart", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCheckout_RejectedListsReasons(t *testing.T) {
	mux := newLoadedApplication(t).mount()
	sessionID := createSession(t, mux)

	rr := executeRequest(t, mux, http.MethodPost, "/api/v1/sessions/"+sessionID+"/cart/checkout", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var resp struct {
		Reasons []string `json:"reasons"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"cart is empty", "delivery address is not set", "payment method is not set"}, resp.Reasons)
}

func checkout(t *testing.T, mux http.Handler, sessionID string) CheckoutResponse {
	t.Helper()
	base := "/api/v1/sessions/" + sessionID

	rr := executeRequest(t, mux, http.MethodPost, base+"/cart/items", map[string]any{
		"item_id":  catalog.ItemID("Margherita Pizza"),
		"quantity": 1,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = executeRequest(t, mux, http.MethodPut, base+"/cart/address", map[string]any{
		"street": "123 Main St", "city": "Springfield", "state": "IL", "zip_code": "62701", "save": true,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = executeRequest(t, mux, http.MethodPut, base+"/cart/payment", map[string]any{"method": "Apple Pay"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = executeRequest(t, mux, http.MethodPost, base+"/cart/checkout", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp CheckoutResponse
	decodeData(t, rr, &resp)
	return resp
}

func TestCheckout_PlacesOrderAndStartsNewCart(t *testing.T) {
	mux := newLoadedApplication(t).mount()
	sessionID := createSession(t, mux)

	resp := checkout(t, mux, sessionID)

	assert.Equal(t, "preparing", string(resp.Order.Status))
	assert.Equal(t, "Preparing", resp.Order.StatusLabel)
	assert.True(t, strings.HasPrefix(resp.Order.OrderNumber, "#"))
	assert.Equal(t, 1, resp.PointsEarned)
	assert.Empty(t, resp.Cart.Lines)
	require.NotNil(t, resp.Cart.DeliveryAddress)
	require.NotNil(t, resp.Cart.PaymentMethod)
	assert.Equal(t, "Apple Pay", string(*resp.Cart.PaymentMethod))

	rr := executeRequest(t, mux, http.MethodGet, "/api/v1/sessions/"+sessionID+"/profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var profile ProfileResponse
	decodeData(t, rr, &profile)
	require.Len(t, profile.History, 1)
	assert.Equal(t, resp.Order.Total, profile.History[0].Total)
	assert.Equal(t, 1, profile.LoyaltyPoints)
	assert.Len(t, profile.SavedAddresses, 1)
}

func TestOrders_StatusUpdateIsQueued(t *testing.T) {
	app := newLoadedApplication(t)
	mux := app.mount()
	sessionID := createSession(t, mux)
	order := checkout(t, mux, sessionID).Order

	base := "/api/v1/sessions/" + sessionID + "/orders/" + url.PathEscape(order.OrderNumber)

	rr := executeRequest(t, mux, http.MethodPatch, base+"/status", map[string]any{"status": "completed"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = executeRequest(t, mux, http.MethodPatch, base+"/status", map[string]any{"status": "cart"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = executeRequest(t, mux, http.MethodPatch, base+"/status", map[string]any{"status": "ready_for_pickup", "reason": "packed"})
	require.Equal(t, http.StatusAccepted, rr.Code)

	broker := app.broker.(*queue.MemoryBroker)
	assert.Equal(t, 1, broker.Pending(queue.QueueOrderStatus))

	// without the leading "#"
	rr = executeRequest(t, mux, http.MethodGet, "/api/v1/sessions/"+sessionID+"/orders/"+strings.TrimPrefix(order.OrderNumber, "#")+"/audit", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = executeRequest(t, mux, http.MethodGet, "/api/v1/sessions/"+sessionID+"/orders", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var orders []OrderResponse
	decodeData(t, rr, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "preparing", string(orders[0].Status))
}

func TestProfile_Endpoints(t *testing.T) {
	mux := newLoadedApplication(t).mount()
	sessionID := createSession(t, mux)
	base := "/api/v1/sessions/" + sessionID + "/profile"

	rr := executeRequest(t, mux, http.MethodPut, base, map[string]any{"name": "Sam", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = executeRequest(t, mux, http.MethodPut, base, map[string]any{"name": "Sam", "email": "sam@example.com"})
	require.Equal(t, http.StatusOK, rr.Code)
	var profile ProfileResponse
	decodeData(t, rr, &profile)
	assert.True(t, profile.IsLoggedIn)

	rr = executeRequest(t, mux, http.MethodPost, base+"/favorites/"+catalog.ItemID("Iced Tea"), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &profile)
	assert.Len(t, profile.Favorites, 1)

	rr = executeRequest(t, mux, http.MethodPatch, base+"/preferences", map[string]any{"dark_mode": true, "preferred_payment_method": "PayPal"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = executeRequest(t, mux, http.MethodPost, base+"/logout", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &profile)
	assert.False(t, profile.IsLoggedIn)
	assert.Empty(t, profile.Favorites)
	assert.True(t, profile.DarkMode)
	assert.Nil(t, profile.PreferredPaymentMethod)
}

func TestCatalogImport_Unconfigured(t *testing.T) {
	mux := newLoadedApplication(t).mount()

	rr := executeRequest(t, mux, http.MethodPost, "/api/v1/catalog/import", map[string]any{"spreadsheet_id": "sheet-1"})
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = executeRequest(t, mux, http.MethodGet, "/api/v1/catalog/import/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRateLimiter(t *testing.T) {
	app := newTestApplication(t, config{
		rateLimiter: ratelimiter.Config{RequestsPerTimeFrame: 2, TimeFrame: time.Minute, Enabled: true},
	})
	mux := app.mount()

	for i := 0; i < 2; i++ {
		rr := executeRequest(t, mux, http.MethodGet, "/api/v1/health", nil)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := executeRequest(t, mux, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newLoadedApplication(t).mount()
	executeRequest(t, mux, http.MethodGet, "/api/v1/menu", nil)

	rr := executeRequest(t, mux, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "menu_order_http_requests_total")
}
