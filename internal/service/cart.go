package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/pkg/errors"
)

// Cart holds the customer's in-progress selection as price/quantity
// snapshots keyed by product id. Prices are captured from the catalogue when
// a line is first added and never refreshed afterwards; stock is consulted
// only when a quantity increases. A Cart belongs to exactly one checkout
// session and is not safe for concurrent use.
type Cart struct {
	catalogue catalogue.Catalogue
	logger    *zap.Logger
	items     map[string]domain.CartItem
}

// NewCart creates an empty cart backed by the given catalogue
func NewCart(cat catalogue.Catalogue, logger *zap.Logger) *Cart {
	return &Cart{
		catalogue: cat,
		logger:    logger,
		items:     make(map[string]domain.CartItem),
	}
}

// Add puts qty more units of a product in the cart. A brand-new line
// captures the product's current name and price; adding to an existing line
// keeps the original price snapshot and only grows the quantity.
func (c *Cart) Add(ctx context.Context, productID string, qty int) error {
	if qty < 1 {
		return &errors.ErrValidation{Field: "qty", Message: "must be at least 1"}
	}

	product, err := c.catalogue.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return &errors.ErrNotFound{Resource: "product", ID: productID}
	}

	intendedQty := qty
	existing, inCart := c.items[productID]
	if inCart {
		intendedQty = existing.Qty + qty
	}
	if intendedQty > product.Stock {
		return &errors.ErrOutOfStock{
			ProductID: productID,
			Requested: intendedQty,
			Available: product.Stock,
		}
	}

	var item domain.CartItem
	if inCart {
		item, err = existing.WithQty(intendedQty)
	} else {
		item, err = domain.NewCartItem(productID, product.Name, product.Price, qty)
	}
	if err != nil {
		return err
	}

	c.items[productID] = item
	c.logger.Info("cart item added",
		zap.String("product_id", productID),
		zap.Int("qty", item.Qty),
		zap.String("unit_price", item.UnitPrice.StringFixed(2)),
	)
	return nil
}

// UpdateQty sets a new quantity for an existing line. Zero removes the line;
// an unchanged quantity is a no-op; decreases never consult the catalogue,
// since they cannot violate stock limits. Increases re-validate against
// current stock. The original price snapshot is always preserved.
func (c *Cart) UpdateQty(ctx context.Context, productID string, qty int) error {
	existing, inCart := c.items[productID]
	if !inCart {
		return &errors.ErrNotInCart{ProductID: productID}
	}

	if qty == 0 {
		return c.Remove(productID)
	}
	if qty < 0 {
		return &errors.ErrValidation{Field: "qty", Message: "must not be negative"}
	}
	if qty == existing.Qty {
		return nil
	}

	if qty > existing.Qty {
		product, err := c.catalogue.GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return &errors.ErrNotFound{Resource: "product", ID: productID}
		}
		if qty > product.Stock {
			return &errors.ErrOutOfStock{
				ProductID: productID,
				Requested: qty,
				Available: product.Stock,
			}
		}
	}

	item, err := existing.WithQty(qty)
	if err != nil {
		return err
	}
	c.items[productID] = item
	c.logger.Info("cart quantity updated",
		zap.String("product_id", productID),
		zap.Int("qty", qty),
	)
	return nil
}

// Remove deletes a line unconditionally.
func (c *Cart) Remove(productID string) error {
	if _, inCart := c.items[productID]; !inCart {
		return &errors.ErrNotInCart{ProductID: productID}
	}
	delete(c.items, productID)
	c.logger.Info("cart item removed", zap.String("product_id", productID))
	return nil
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() {
	c.items = make(map[string]domain.CartItem)
}

// Subtotal sums unit_price * qty over all lines. Zero for an empty cart.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a snapshot of the current lines, sorted by product id.
// Mutating the returned slice does not affect the cart.
func (c *Cart) Items() []domain.CartItem {
	items := make([]domain.CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items
}
