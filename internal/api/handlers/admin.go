package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/domain"
)

// CreateProductRequest represents the admin product-creation payload
type CreateProductRequest struct {
	ID     string `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Price  string `json:"price" binding:"required"`
	Stock  int    `json:"stock"`
	TypeID string `json:"type_id"`
}

// CreateProductTypeRequest represents the admin category-creation payload
type CreateProductTypeRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateProductRequest carries optional price/stock changes.
type UpdateProductRequest struct {
	Price *string `json:"price,omitempty"`
	Stock *int    `json:"stock,omitempty"`
}

// HandleCreateProduct handles POST /v1/admin/products
func HandleCreateProduct(store catalogue.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "price must be a decimal number"})
			return
		}

		product := domain.Product{
			ID:     req.ID,
			Name:   req.Name,
			Price:  price,
			Stock:  req.Stock,
			TypeID: req.TypeID,
		}
		if err := store.AddProduct(c.Request.Context(), product); err != nil {
			respondError(c, err)
			return
		}

		logger.Info("product created",
			zap.String("product_id", req.ID),
			zap.String("price", price.StringFixed(2)),
		)
		c.JSON(http.StatusCreated, toProductResponse(product))
	}
}

// HandleCreateProductType handles POST /v1/admin/product-types
func HandleCreateProductType(store catalogue.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		t := domain.ProductType{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
		}
		if err := store.AddType(c.Request.Context(), t); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": t.ID, "name": t.Name})
	}
}

// HandleUpdateProduct handles PATCH /v1/admin/products/:id
func HandleUpdateProduct(store catalogue.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Price == nil && req.Stock == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "price or stock required"})
			return
		}

		productID := c.Param("id")

		if req.Price != nil {
			price, err := decimal.NewFromString(*req.Price)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "price must be a decimal number"})
				return
			}
			if err := store.UpdatePrice(c.Request.Context(), productID, price); err != nil {
				respondError(c, err)
				return
			}
		}

		if req.Stock != nil {
			if err := store.UpdateStock(c.Request.Context(), productID, *req.Stock); err != nil {
				respondError(c, err)
				return
			}
		}

		product, err := store.GetProduct(c.Request.Context(), productID)
		if err != nil || product == nil {
			logger.Error("Failed to reload product after update", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, toProductResponse(*product))
	}
}
