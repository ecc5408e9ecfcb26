package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddCartItemRequest represents the add-to-cart payload
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty"`
}

// UpdateCartItemRequest represents the quantity-update payload
type UpdateCartItemRequest struct {
	Qty *int `json:"qty" binding:"required"`
}

// HandleAddCartItem handles POST /v1/cart/items
func HandleAddCartItem(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Qty == 0 {
			req.Qty = 1
		}

		session := sessions.Get(sid)
		if err := session.Front.AddToCart(c.Request.Context(), req.ProductID, req.Qty); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, session.Front.ViewCart())
	}
}

// HandleUpdateCartItem handles PATCH /v1/cart/items/:id
func HandleUpdateCartItem(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		session := sessions.Get(sid)
		if err := session.Front.UpdateCartQty(c.Request.Context(), c.Param("id"), *req.Qty); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, session.Front.ViewCart())
	}
}

// HandleRemoveCartItem handles DELETE /v1/cart/items/:id
func HandleRemoveCartItem(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		session := sessions.Get(sid)
		if err := session.Front.RemoveFromCart(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, session.Front.ViewCart())
	}
}

// HandleViewCart handles GET /v1/cart
func HandleViewCart(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sessions.Get(sid).Front.ViewCart())
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		sessions.Get(sid).Cart.Clear()
		c.Status(http.StatusNoContent)
	}
}
