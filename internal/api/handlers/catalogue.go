package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/domain"
)

// ProductResponse represents one catalogue product
type ProductResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Stock  int    `json:"stock"`
	TypeID string `json:"type_id,omitempty"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price.StringFixed(2),
		Stock:  p.Stock,
		TypeID: p.TypeID,
	}
}

// HandleListProducts handles GET /v1/products with optional ?q= search and
// ?type= filter
func HandleListProducts(cat catalogue.Browser, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			products []domain.Product
			err      error
		)

		switch {
		case c.Query("type") != "":
			products, err = cat.FilterByType(c.Request.Context(), c.Query("type"))
		case c.Query("q") != "":
			products, err = cat.SearchProducts(c.Request.Context(), c.Query("q"))
		default:
			products, err = cat.ListProducts(c.Request.Context())
		}
		if err != nil {
			logger.Error("Failed to list products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		responses := make([]ProductResponse, len(products))
		for i, p := range products {
			responses[i] = toProductResponse(p)
		}
		c.JSON(http.StatusOK, gin.H{"products": responses})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(cat catalogue.Catalogue, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := cat.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			logger.Error("Failed to get product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*product))
	}
}
