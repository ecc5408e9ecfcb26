package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourlocalshop/storefront/pkg/errors"
)

// CartItem is an immutable line-item snapshot. The unit price is captured
// once when the product is first added and never refreshed from the
// catalogue. Quantity changes produce a replacement value via WithQty.
type CartItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Qty       int
}

// NewCartItem validates and builds a line-item snapshot.
func NewCartItem(productID, name string, unitPrice decimal.Decimal, qty int) (CartItem, error) {
	if strings.TrimSpace(productID) == "" {
		return CartItem{}, &errors.ErrValidation{Field: "product_id", Message: "must not be empty"}
	}
	if strings.TrimSpace(name) == "" {
		return CartItem{}, &errors.ErrValidation{Field: "name", Message: "must not be empty"}
	}
	if unitPrice.IsNegative() {
		return CartItem{}, &errors.ErrValidation{Field: "unit_price", Message: "must not be negative"}
	}
	if qty < 1 {
		return CartItem{}, &errors.ErrValidation{Field: "qty", Message: "must be at least 1"}
	}
	return CartItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Qty:       qty,
	}, nil
}

// WithQty returns a new CartItem with the same price snapshot and the given
// quantity. The receiver is unchanged.
func (i CartItem) WithQty(qty int) (CartItem, error) {
	if qty < 1 {
		return CartItem{}, &errors.ErrValidation{Field: "qty", Message: "must be at least 1"}
	}
	replacement := i
	replacement.Qty = qty
	return replacement, nil
}

// Subtotal is unit price times quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
}
