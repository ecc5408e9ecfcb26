package errors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates malformed input (bad quantity, negative price,
// empty required field).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrNotFound indicates a referenced resource does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ErrNotInCart indicates an update/remove on a product with no cart line.
type ErrNotInCart struct {
	ProductID string
}

func (e *ErrNotInCart) Error() string {
	return fmt.Sprintf("product %q is not in the cart", e.ProductID)
}

// ErrOutOfStock indicates a requested quantity exceeds catalogue stock.
type ErrOutOfStock struct {
	ProductID string
	Requested int
	Available int
}

func (e *ErrOutOfStock) Error() string {
	return fmt.Sprintf("product %q: requested %d exceeds available stock %d",
		e.ProductID, e.Requested, e.Available)
}

// ErrEmptyCart indicates checkout was attempted with no items.
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrInvalidAddress carries the address validation message.
type ErrInvalidAddress struct {
	Message string
}

func (e *ErrInvalidAddress) Error() string {
	return fmt.Sprintf("invalid address: %s", e.Message)
}

// ErrInvalidStateTransition indicates an illegal order status change.
type ErrInvalidStateTransition struct {
	From string
	To   string
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrConsistency indicates two independently computed values disagree.
// This signals a bug, not a user error.
type ErrConsistency struct {
	Expected string
	Actual   string
}

func (e *ErrConsistency) Error() string {
	return fmt.Sprintf("internal consistency failure: expected %s, got %s", e.Expected, e.Actual)
}

// ErrContractViolation indicates a collaborator returned a malformed result.
type ErrContractViolation struct {
	Collaborator string
	Message      string
}

func (e *ErrContractViolation) Error() string {
	return fmt.Sprintf("%s violated its contract: %s", e.Collaborator, e.Message)
}

// ErrUnauthorized indicates a missing or invalid API key.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool {
	var target *ErrNotFound
	return errors.As(err, &target)
}

// IsOutOfStock reports whether err is an ErrOutOfStock.
func IsOutOfStock(err error) bool {
	var target *ErrOutOfStock
	return errors.As(err, &target)
}

// IsValidation reports whether err is an ErrValidation.
func IsValidation(err error) bool {
	var target *ErrValidation
	return errors.As(err, &target)
}
