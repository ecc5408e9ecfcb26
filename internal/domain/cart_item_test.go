package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartItem_Validation(t *testing.T) {
	price := decimal.RequireFromString("3.50")

	_, err := NewCartItem("", "Milk", price, 1)
	assert.Error(t, err)

	_, err = NewCartItem("MILK1", "", price, 1)
	assert.Error(t, err)

	_, err = NewCartItem("MILK1", "Milk", decimal.RequireFromString("-0.01"), 1)
	assert.Error(t, err)

	_, err = NewCartItem("MILK1", "Milk", price, 0)
	assert.Error(t, err)

	item, err := NewCartItem("MILK1", "Milk", price, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Qty)
}

func TestCartItemSubtotal_Exact(t *testing.T) {
	// 3.50 * 3 must be exactly 10.50, with no float drift.
	item, err := NewCartItem("MILK1", "Milk", decimal.RequireFromString("3.50"), 3)
	require.NoError(t, err)
	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("10.50")))
}

func TestCartItemWithQty_ReplacesWithoutMutating(t *testing.T) {
	original, err := NewCartItem("MILK1", "Milk", decimal.RequireFromString("3.50"), 2)
	require.NoError(t, err)

	replacement, err := original.WithQty(5)
	require.NoError(t, err)

	assert.Equal(t, 2, original.Qty, "externally-held reference must not change underfoot")
	assert.Equal(t, 5, replacement.Qty)
	assert.True(t, replacement.UnitPrice.Equal(original.UnitPrice), "price snapshot preserved")

	_, err = original.WithQty(0)
	assert.Error(t, err)
}
