package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/domain"
)

// CheckoutRequest carries the delivery address for a quote or an order.
type CheckoutRequest struct {
	Address AddressPayload `json:"address" binding:"required"`
}

// AddressPayload is the wire form of a delivery address. Field validation
// beyond presence happens in domain.Address.Validate.
type AddressPayload struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

func (p AddressPayload) toDomain() domain.Address {
	return domain.Address{
		Street:   p.Street,
		City:     p.City,
		State:    p.State,
		Postcode: p.Postcode,
	}
}

// QuoteResponse is the priced breakdown for the current cart.
type QuoteResponse struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

// PlaceOrderResponse reports the checkout outcome. A declined payment still
// returns the pending order id so the customer can retry.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
	Paid    bool   `json:"paid"`
	Message string `json:"message"`
}

// HandleCheckoutQuote handles POST /v1/checkout/quote
func HandleCheckoutQuote(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		totals, err := sessions.Get(sid).Front.QuoteCheckout(req.Address.toDomain())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, QuoteResponse{
			Subtotal: totals.Subtotal.StringFixed(2),
			Shipping: totals.Shipping.StringFixed(2),
			Total:    totals.Total.StringFixed(2),
		})
	}
}

// HandlePlaceOrder handles POST /v1/checkout
func HandlePlaceOrder(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		result, err := sessions.Get(sid).Front.Checkout(c.Request.Context(), req.Address.toDomain())
		if err != nil {
			logger.Error("checkout failed", zap.Error(err))
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, PlaceOrderResponse{
			OrderID: result.OrderID,
			Paid:    result.Paid,
			Message: result.Message,
		})
	}
}
