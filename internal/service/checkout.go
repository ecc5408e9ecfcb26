package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/internal/repository"
	"github.com/yourlocalshop/storefront/pkg/errors"
)

// CheckoutCart is the cart contract consumed by checkout: the read view plus
// the ability to clear the cart after a committed order.
type CheckoutCart interface {
	CartView
	Clear()
}

// ShippingQuoter computes a shipping fee for a cart and address.
type ShippingQuoter interface {
	CostFor(cart CartView, address domain.Address) decimal.Decimal
}

// Charger attempts a payment against an order id.
type Charger interface {
	Charge(ctx context.Context, orderID string, amount decimal.Decimal) (*ChargeResult, error)
}

// Totals is the priced breakdown of a checkout attempt.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// PlaceOrderResult reports the outcome of a place-order call. A declined
// payment still carries the (still-pending) order id so the caller can retry
// with the same cart contents.
type PlaceOrderResult struct {
	OrderID string
	Paid    bool
	Message string
}

// CheckoutService orchestrates the place-order workflow: validate
// preconditions, snapshot the cart into a pending order, take payment, and
// commit side effects only on success.
type CheckoutService struct {
	cart     CheckoutCart
	shipping ShippingQuoter
	payments Charger
	orders   repository.OrderRepository
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewCheckoutService creates a checkout service over the given collaborators
func NewCheckoutService(
	cart CheckoutCart,
	shipping ShippingQuoter,
	payments Charger,
	orders repository.OrderRepository,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		shipping: shipping,
		payments: payments,
		orders:   orders,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// ComputeTotals validates the checkout preconditions and prices the cart.
// It fails on an empty cart or an invalid address, before any order exists.
func (s *CheckoutService) ComputeTotals(address domain.Address) (*Totals, error) {
	if s.cart.IsEmpty() {
		return nil, &errors.ErrEmptyCart{}
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	subtotal := s.cart.Subtotal()
	shipping := s.shipping.CostFor(s.cart, address)
	total := subtotal.Add(shipping)

	// Unreachable with non-negative inputs; detect rather than propagate.
	if total.IsNegative() {
		return nil, &errors.ErrValidation{Field: "total", Message: "must not be negative"}
	}

	return &Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    total,
	}, nil
}

// PlaceOrder runs the full checkout flow. On a successful charge the order
// is marked paid and the cart cleared; on a declined charge the order stays
// pending and the cart is left intact for a retry.
func (s *CheckoutService) PlaceOrder(ctx context.Context, address domain.Address) (*PlaceOrderResult, error) {
	totals, err := s.ComputeTotals(address)
	if err != nil {
		return nil, err
	}

	order, err := s.buildOrder(address, totals.Shipping)
	if err != nil {
		return nil, err
	}

	// The order recomputes its total from the copied items. It must agree
	// with the precomputed total; a mismatch means the cart changed between
	// pricing and snapshotting, which is a bug, not a user error.
	if !order.Total().Equal(totals.Total) {
		return nil, &errors.ErrConsistency{
			Expected: totals.Total.StringFixed(2),
			Actual:   order.Total().StringFixed(2),
		}
	}

	result, err := s.payments.Charge(ctx, order.ID(), order.Total())
	if err != nil {
		return nil, err
	}

	if result.Success {
		if err := order.MarkPaid(s.now()); err != nil {
			return nil, err
		}
		s.cart.Clear()
	}

	if err := s.orders.Save(ctx, order); err != nil {
		// The business outcome stands; losing the lookup copy is logged,
		// never propagated.
		s.logger.Error("failed to save order",
			zap.String("order_id", order.ID()),
			zap.Error(err),
		)
	}

	message := result.Message
	if message == "" {
		if result.Success {
			message = "Payment processed"
		} else {
			message = "Payment failed"
		}
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID()),
		zap.String("status", string(order.Status())),
		zap.String("total", order.Total().StringFixed(2)),
		zap.Bool("paid", result.Success),
	)

	return &PlaceOrderResult{
		OrderID: order.ID(),
		Paid:    result.Success,
		Message: message,
	}, nil
}

// buildOrder deep-copies the cart lines into an independent pending order,
// recomputing the subtotal from the copies rather than trusting cart state.
func (s *CheckoutService) buildOrder(address domain.Address, shipping decimal.Decimal) (*domain.Order, error) {
	cartItems := s.cart.Items()
	items := make([]domain.OrderItem, len(cartItems))
	subtotal := decimal.Zero
	for i, line := range cartItems {
		items[i] = domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Qty:       line.Qty,
		}
		subtotal = subtotal.Add(items[i].Subtotal())
	}

	return domain.NewOrder(s.newID(), items, address, shipping, subtotal.Add(shipping), s.now())
}
