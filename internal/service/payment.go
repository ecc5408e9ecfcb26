package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/pkg/errors"
)

// ChargeResult reports the outcome of a payment attempt. Declined payments
// are results, not errors.
type ChargeResult struct {
	Success bool
	Message string
}

// PaymentGateway is the injectable gateway abstraction. A business decline
// is a result with Success=false; errors are reserved for infrastructure
// failures. Returning (nil, nil) violates the contract.
type PaymentGateway interface {
	Charge(ctx context.Context, orderID string, amount decimal.Decimal) (*ChargeResult, error)
}

// PaymentService charges amounts against order ids. Without a gateway it
// returns a deterministic success, for demo purposes.
type PaymentService struct {
	gateway PaymentGateway
	logger  *zap.Logger
}

// NewPaymentService creates a payment service. gateway may be nil.
func NewPaymentService(gateway PaymentGateway, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// Charge attempts to charge amount against orderID. Malformed input fails
// fast with a failed result rather than an error.
func (s *PaymentService) Charge(ctx context.Context, orderID string, amount decimal.Decimal) (*ChargeResult, error) {
	if strings.TrimSpace(orderID) == "" {
		return &ChargeResult{Success: false, Message: "order id is required"}, nil
	}
	if amount.IsNegative() {
		return &ChargeResult{Success: false, Message: "amount cannot be negative"}, nil
	}

	if s.gateway == nil {
		// Demo mode: every well-formed charge succeeds.
		return &ChargeResult{
			Success: true,
			Message: fmt.Sprintf("Payment of $%s processed. Order %s confirmed", amount.StringFixed(2), orderID),
		}, nil
	}

	result, err := s.gateway.Charge(ctx, orderID, amount)
	if err != nil {
		s.logger.Error("payment gateway error",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return nil, err
	}
	if result == nil {
		return nil, &errors.ErrContractViolation{
			Collaborator: "payment gateway",
			Message:      "returned neither a result nor an error",
		}
	}

	s.logger.Info("payment attempted",
		zap.String("order_id", orderID),
		zap.String("amount", amount.StringFixed(2)),
		zap.Bool("success", result.Success),
	)
	return result, nil
}
