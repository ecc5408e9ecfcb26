package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yourlocalshop/storefront/internal/domain"
)

// fakeCatalogue implements catalogue.Catalogue for testing
type fakeCatalogue struct {
	products map[string]domain.Product
	err      error
	lookups  int
}

func newFakeCatalogue(products ...domain.Product) *fakeCatalogue {
	f := &fakeCatalogue{products: make(map[string]domain.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeCatalogue) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeCatalogue) setStock(productID string, stock int) {
	p := f.products[productID]
	p.Stock = stock
	f.products[productID] = p
}

func (f *fakeCatalogue) setPrice(productID string, price decimal.Decimal) {
	p := f.products[productID]
	p.Price = price
	f.products[productID] = p
}

// fakeGateway implements PaymentGateway for testing
type fakeGateway struct {
	result *ChargeResult
	err    error

	gotOrderID string
	gotAmount  decimal.Decimal
	calls      int
}

func (f *fakeGateway) Charge(_ context.Context, orderID string, amount decimal.Decimal) (*ChargeResult, error) {
	f.calls++
	f.gotOrderID = orderID
	f.gotAmount = amount
	return f.result, f.err
}

// driftingCart implements CheckoutCart and reports a subtotal that disagrees
// with its items, to drive the consistency check.
type driftingCart struct {
	items    []domain.CartItem
	subtotal decimal.Decimal
	cleared  bool
}

func (c *driftingCart) Subtotal() decimal.Decimal { return c.subtotal }
func (c *driftingCart) Items() []domain.CartItem  { return c.items }
func (c *driftingCart) IsEmpty() bool             { return len(c.items) == 0 }
func (c *driftingCart) Clear()                    { c.cleared = true }

func milkProduct() domain.Product {
	return domain.Product{
		ID:    "MILK1",
		Name:  "Full Cream Milk",
		Price: decimal.RequireFromString("3.50"),
		Stock: 20,
	}
}

func testAddress() domain.Address {
	return domain.Address{
		Street:   "123 Main St",
		City:     "Melbourne",
		State:    "VIC",
		Postcode: "3000",
	}
}
