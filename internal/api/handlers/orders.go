package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/internal/repository"
	"github.com/yourlocalshop/storefront/pkg/errors"
)

// OrderResponse represents the order response
type OrderResponse struct {
	ID        string              `json:"id"`
	Status    domain.OrderStatus  `json:"status"`
	Items     []OrderItemResponse `json:"items"`
	Address   AddressPayload      `json:"address"`
	Shipping  string              `json:"shipping"`
	Total     string              `json:"total"`
	CreatedAt string              `json:"created_at"`
	PaidAt    string              `json:"paid_at,omitempty"`
}

type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Qty       int    `json:"qty"`
	Subtotal  string `json:"subtotal"`
}

// HandleGetOrder handles GET /v1/orders/:id
func HandleGetOrder(orders repository.OrderRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to get order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		items := order.Items()
		itemResponses := make([]OrderItemResponse, len(items))
		for i, item := range items {
			itemResponses[i] = OrderItemResponse{
				ProductID: item.ProductID,
				Name:      item.Name,
				UnitPrice: item.UnitPrice.StringFixed(2),
				Qty:       item.Qty,
				Subtotal:  item.Subtotal().StringFixed(2),
			}
		}

		address := order.Address()
		response := OrderResponse{
			ID:     order.ID(),
			Status: order.Status(),
			Items:  itemResponses,
			Address: AddressPayload{
				Street:   address.Street,
				City:     address.City,
				State:    address.State,
				Postcode: address.Postcode,
			},
			Shipping:  order.Shipping().StringFixed(2),
			Total:     order.Total().StringFixed(2),
			CreatedAt: order.CreatedAt().Format(time.RFC3339),
		}
		if paidAt := order.PaidAt(); paidAt != nil {
			response.PaidAt = paidAt.Format(time.RFC3339)
		}

		c.JSON(http.StatusOK, response)
	}
}
