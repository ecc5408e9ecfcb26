package service

import (
	"context"
	"strings"

	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/domain"
)

// StoreFront is the facade coordinating customer-facing operations. It hides
// the catalogue/cart/checkout wiring behind one entry point and returns
// read-model views suitable for a thin UI layer.
type StoreFront struct {
	catalogue catalogue.Browser
	cart      *Cart
	checkout  *CheckoutService
}

// NewStoreFront wires the storefront facade
func NewStoreFront(cat catalogue.Browser, cart *Cart, checkout *CheckoutService) *StoreFront {
	return &StoreFront{
		catalogue: cat,
		cart:      cart,
		checkout:  checkout,
	}
}

// BrowseProducts lists every catalogue product.
func (s *StoreFront) BrowseProducts(ctx context.Context) ([]domain.Product, error) {
	return s.catalogue.ListProducts(ctx)
}

// SearchProducts searches by keyword; a blank query lists everything.
func (s *StoreFront) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.catalogue.ListProducts(ctx)
	}
	return s.catalogue.SearchProducts(ctx, query)
}

// FilterProductsByType filters by product category.
func (s *StoreFront) FilterProductsByType(ctx context.Context, typeID string) ([]domain.Product, error) {
	return s.catalogue.FilterByType(ctx, typeID)
}

// AddToCart adds a product to the shopping cart.
func (s *StoreFront) AddToCart(ctx context.Context, productID string, qty int) error {
	return s.cart.Add(ctx, productID, qty)
}

// UpdateCartQty changes a line's quantity (zero removes it).
func (s *StoreFront) UpdateCartQty(ctx context.Context, productID string, qty int) error {
	return s.cart.UpdateQty(ctx, productID, qty)
}

// RemoveFromCart deletes a line.
func (s *StoreFront) RemoveFromCart(productID string) error {
	return s.cart.Remove(productID)
}

// ViewCart returns the cart contents and subtotal as a display model.
func (s *StoreFront) ViewCart() CartSummary {
	items := s.cart.Items()
	lines := make([]CartLine, len(items))
	for i, item := range items {
		lines[i] = CartLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal().StringFixed(2),
		}
	}
	return CartSummary{
		Lines:    lines,
		Subtotal: s.cart.Subtotal().StringFixed(2),
	}
}

// QuoteCheckout prices the current cart for the given address.
func (s *StoreFront) QuoteCheckout(address domain.Address) (*Totals, error) {
	return s.checkout.ComputeTotals(address)
}

// Checkout places the order.
func (s *StoreFront) Checkout(ctx context.Context, address domain.Address) (*PlaceOrderResult, error) {
	return s.checkout.PlaceOrder(ctx, address)
}
