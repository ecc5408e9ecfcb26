package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourlocalshop/storefront/pkg/errors"
)

// OrderItem is an immutable snapshot of a product at order placement time.
// It has the same shape as CartItem but is independently typed: an order
// never aliases the cart's items, since the cart is cleared and mutated
// after the order is created.
type OrderItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Qty       int
}

// Subtotal is unit price times quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Order is an immutable-after-construction record of a committed (or
// committing) purchase. Status changes are the only mutations, and each one
// is checked against the transition table in OrderStatus.
type Order struct {
	id        string
	items     []OrderItem
	address   Address
	shipping  decimal.Decimal
	total     decimal.Decimal
	status    OrderStatus
	createdAt time.Time
	paidAt    *time.Time

	trackingCarrier string
	trackingNumber  string
}

// NewOrder builds a pending order. Items are defensively copied.
func NewOrder(id string, items []OrderItem, address Address, shipping, total decimal.Decimal, now time.Time) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &errors.ErrValidation{Field: "id", Message: "must not be empty"}
	}
	if len(items) == 0 {
		return nil, &errors.ErrValidation{Field: "items", Message: "must not be empty"}
	}
	if shipping.IsNegative() {
		return nil, &errors.ErrValidation{Field: "shipping", Message: "must not be negative"}
	}
	if !total.IsPositive() {
		return nil, &errors.ErrValidation{Field: "total", Message: "must be positive"}
	}

	copied := make([]OrderItem, len(items))
	copy(copied, items)

	return &Order{
		id:        strings.TrimSpace(id),
		items:     copied,
		address:   address,
		shipping:  shipping,
		total:     total,
		status:    OrderStatusPending,
		createdAt: now,
	}, nil
}

func (o *Order) ID() string                { return o.id }
func (o *Order) Address() Address          { return o.address }
func (o *Order) Shipping() decimal.Decimal { return o.shipping }
func (o *Order) Total() decimal.Decimal    { return o.total }
func (o *Order) Status() OrderStatus       { return o.status }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }

// Items returns a copy of the order's line items.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// PaidAt returns the payment timestamp, or nil if the order is unpaid.
func (o *Order) PaidAt() *time.Time {
	if o.paidAt == nil {
		return nil
	}
	t := *o.paidAt
	return &t
}

// Tracking returns the carrier and tracking number set by MarkShipped.
func (o *Order) Tracking() (carrier, number string) {
	return o.trackingCarrier, o.trackingNumber
}

// MarkPaid records a successful payment. Legal only from PENDING, and at
// most once; PaidAt is set exactly once.
func (o *Order) MarkPaid(now time.Time) error {
	if err := o.transition(OrderStatusPaid); err != nil {
		return err
	}
	o.paidAt = &now
	return nil
}

// MarkFulfilled records that the order has been picked and packed.
func (o *Order) MarkFulfilled() error {
	return o.transition(OrderStatusFulfilled)
}

// MarkShipped records handover to a courier with tracking details.
func (o *Order) MarkShipped(carrier, trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return &errors.ErrValidation{Field: "tracking_number", Message: "must not be empty"}
	}
	if err := o.transition(OrderStatusShipped); err != nil {
		return err
	}
	o.trackingCarrier = carrier
	o.trackingNumber = trackingNumber
	return nil
}

// MarkDelivered records delivery confirmation.
func (o *Order) MarkDelivered() error {
	return o.transition(OrderStatusDelivered)
}

// Cancel cancels the order. Legal before fulfilment only.
func (o *Order) Cancel() error {
	return o.transition(OrderStatusCancelled)
}

func (o *Order) transition(to OrderStatus) error {
	if !o.status.CanTransitionTo(to) {
		return &errors.ErrInvalidStateTransition{
			From: string(o.status),
			To:   string(to),
		}
	}
	o.status = to
	return nil
}

// CalculateSubtotal recomputes the item subtotal on demand. It must agree
// with the value used at construction time.
func (o *Order) CalculateSubtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}
