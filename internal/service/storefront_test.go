package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/internal/repository"
)

func newStoreFront(t *testing.T) *StoreFront {
	t.Helper()
	logger := zap.NewNop()
	ctx := context.Background()

	cat := catalogue.NewMemoryCatalogue(logger)
	require.NoError(t, cat.AddType(ctx, domain.ProductType{ID: "dairy", Name: "Dairy"}))
	require.NoError(t, cat.AddProduct(ctx, domain.Product{
		ID: "MILK1", Name: "Full Cream Milk", Price: decimal.RequireFromString("3.50"), Stock: 20, TypeID: "dairy",
	}))
	require.NoError(t, cat.AddProduct(ctx, domain.Product{
		ID: "BREAD1", Name: "Sourdough Loaf", Price: decimal.RequireFromString("6.00"), Stock: 15,
	}))

	cart := NewCart(cat, logger)
	policy, err := NewShippingPolicy(decimal.RequireFromString("7.50"), nil)
	require.NoError(t, err)
	checkout := NewCheckoutService(cart, policy, NewPaymentService(nil, logger),
		repository.NewMemoryOrderRepository(logger), logger)

	return NewStoreFront(cat, cart, checkout)
}

func TestStoreFront_BrowseAndSearch(t *testing.T) {
	front := newStoreFront(t)
	ctx := context.Background()

	all, err := front.BrowseProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Blank query behaves like browsing.
	all, err = front.SearchProducts(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	hits, err := front.SearchProducts(ctx, "sourdough")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "BREAD1", hits[0].ID)

	dairy, err := front.FilterProductsByType(ctx, "dairy")
	require.NoError(t, err)
	require.Len(t, dairy, 1)
	assert.Equal(t, "MILK1", dairy[0].ID)
}

func TestStoreFront_ViewCart(t *testing.T) {
	front := newStoreFront(t)
	ctx := context.Background()

	require.NoError(t, front.AddToCart(ctx, "MILK1", 2))
	require.NoError(t, front.AddToCart(ctx, "BREAD1", 1))

	summary := front.ViewCart()
	require.Len(t, summary.Lines, 2)
	assert.Equal(t, "13.00", summary.Subtotal)

	// Lines sorted by product id.
	assert.Equal(t, "BREAD1", summary.Lines[0].ProductID)
	assert.Equal(t, "6.00", summary.Lines[0].Subtotal)
	assert.Equal(t, "MILK1", summary.Lines[1].ProductID)
	assert.Equal(t, "3.50", summary.Lines[1].UnitPrice)
	assert.Equal(t, "7.00", summary.Lines[1].Subtotal)
}

func TestStoreFront_CheckoutRoundTrip(t *testing.T) {
	front := newStoreFront(t)
	ctx := context.Background()

	require.NoError(t, front.AddToCart(ctx, "MILK1", 2))

	totals, err := front.QuoteCheckout(testAddress())
	require.NoError(t, err)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("14.50")))

	result, err := front.Checkout(ctx, testAddress())
	require.NoError(t, err)
	assert.True(t, result.Paid)
	assert.Empty(t, front.ViewCart().Lines)
}
