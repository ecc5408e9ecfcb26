package service

import (
	"github.com/shopspring/decimal"

	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/pkg/errors"
)

// CartView is the read-only cart contract consumed by the shipping policy
// and the checkout service.
type CartView interface {
	Subtotal() decimal.Decimal
	Items() []domain.CartItem
	IsEmpty() bool
}

// ShippingPolicy computes the shipping fee from the cart subtotal: a flat
// rate below the optional free-shipping threshold, zero at or above it. It
// is pure; identical cart state always yields the same fee. The address is
// accepted for future region-based rates but not used yet.
type ShippingPolicy struct {
	flatRate decimal.Decimal
	freeOver *decimal.Decimal
}

// NewShippingPolicy validates the configuration. A nil freeOver disables
// the free-shipping threshold.
func NewShippingPolicy(flatRate decimal.Decimal, freeOver *decimal.Decimal) (*ShippingPolicy, error) {
	if flatRate.IsNegative() {
		return nil, &errors.ErrValidation{Field: "flat_rate", Message: "must not be negative"}
	}
	if freeOver != nil && freeOver.IsNegative() {
		return nil, &errors.ErrValidation{Field: "free_over", Message: "must not be negative"}
	}
	policy := &ShippingPolicy{flatRate: flatRate}
	if freeOver != nil {
		threshold := *freeOver
		policy.freeOver = &threshold
	}
	return policy, nil
}

// CostFor returns the shipping cost for the given cart and address.
func (p *ShippingPolicy) CostFor(cart CartView, _ domain.Address) decimal.Decimal {
	if p.freeOver != nil && cart.Subtotal().GreaterThanOrEqual(*p.freeOver) {
		return decimal.Zero
	}
	return p.flatRate
}
