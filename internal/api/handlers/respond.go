package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourlocalshop/storefront/pkg/errors"
)

// sessionID extracts the checkout session key, rejecting requests without
// one. Carts are owned per session.
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return "", false
	}
	return id, true
}

// respondError maps the domain error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch err.(type) {
	case *errors.ErrValidation, *errors.ErrInvalidAddress:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case *errors.ErrNotFound, *errors.ErrNotInCart:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case *errors.ErrOutOfStock, *errors.ErrEmptyCart, *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case *errors.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		// ErrConsistency, ErrContractViolation and infrastructure failures
		// are internal.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
