package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/internal/repository"
	"github.com/yourlocalshop/storefront/internal/service"
)

type testEnv struct {
	router   *gin.Engine
	orders   repository.OrderRepository
	sessions *Sessions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	ctx := context.Background()

	cat := catalogue.NewMemoryCatalogue(logger)
	require.NoError(t, cat.AddProduct(ctx, domain.Product{
		ID: "MILK1", Name: "Full Cream Milk", Price: decimal.RequireFromString("3.50"), Stock: 20,
	}))

	policy, err := service.NewShippingPolicy(decimal.RequireFromString("7.50"), nil)
	require.NoError(t, err)
	payments := service.NewPaymentService(nil, logger)
	orders := repository.NewMemoryOrderRepository(logger)

	sessions := NewSessions(func() *Session {
		cart := service.NewCart(cat, logger)
		checkout := service.NewCheckoutService(cart, policy, payments, orders, logger)
		return &Session{
			Cart:  cart,
			Front: service.NewStoreFront(cat, cart, checkout),
		}
	})

	router := gin.New()
	router.GET("/v1/products", HandleListProducts(cat, logger))
	router.GET("/v1/products/:id", HandleGetProduct(cat, logger))
	router.POST("/v1/cart/items", HandleAddCartItem(sessions, logger))
	router.PATCH("/v1/cart/items/:id", HandleUpdateCartItem(sessions, logger))
	router.DELETE("/v1/cart/items/:id", HandleRemoveCartItem(sessions, logger))
	router.GET("/v1/cart", HandleViewCart(sessions, logger))
	router.POST("/v1/checkout", HandlePlaceOrder(sessions, logger))
	router.GET("/v1/orders/:id", HandleGetOrder(orders, logger))

	return &testEnv{router: router, orders: orders, sessions: sessions}
}

func (e *testEnv) do(t *testing.T, method, path, session string, body any) *httptest.ResponseRecorder {
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
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCartEndpoints_RequireSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/cart", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MILK1")

	w = env.do(t, http.MethodGet, "/v1/products/NOPE", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/cart/items", "s1",
		AddCartItemRequest{ProductID: "MILK1", Qty: 2})
	require.Equal(t, http.StatusOK, w.Code)

	var summary service.CartSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "7.00", summary.Subtotal)

	// Sessions are isolated: another session sees an empty cart.
	w = env.do(t, http.MethodGet, "/v1/cart", "s2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Empty(t, summary.Lines)

	// Place the order.
	w = env.do(t, http.MethodPost, "/v1/checkout", "s1", CheckoutRequest{
		Address: AddressPayload{Street: "123 Main St", City: "Melbourne", State: "VIC", Postcode: "3000"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var placed PlaceOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.True(t, placed.Paid)
	require.NotEmpty(t, placed.OrderID)

	// Cart emptied, order retrievable as PAID.
	w = env.do(t, http.MethodGet, "/v1/cart", "s1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Empty(t, summary.Lines)

	w = env.do(t, http.MethodGet, "/v1/orders/"+placed.OrderID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.Equal(t, "14.50", order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "MILK1", order.Items[0].ProductID)
}

func TestCheckout_EmptyCartConflict(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/checkout", "s1", CheckoutRequest{
		Address: AddressPayload{Street: "123 Main St", City: "Melbourne", State: "VIC", Postcode: "3000"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCart_OutOfStockConflict(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/cart/items", "s1",
		AddCartItemRequest{ProductID: "MILK1", Qty: 25})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateCartItem_ZeroRemovesLine(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/cart/items", "s1",
		AddCartItemRequest{ProductID: "MILK1", Qty: 2})
	require.Equal(t, http.StatusOK, w.Code)

	zero := 0
	w = env.do(t, http.MethodPatch, "/v1/cart/items/MILK1", "s1", UpdateCartItemRequest{Qty: &zero})
	require.Equal(t, http.StatusOK, w.Code)

	var summary service.CartSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Empty(t, summary.Lines)
}
