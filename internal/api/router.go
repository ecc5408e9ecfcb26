package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/api/handlers"
	"github.com/yourlocalshop/storefront/internal/api/middleware"
	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/config"
	"github.com/yourlocalshop/storefront/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	store catalogue.Store,
	orders repository.OrderRepository,
	sessions *handlers.Sessions,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/products", handlers.HandleListProducts(store, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(store, logger))

		v1.POST("/cart/items", handlers.HandleAddCartItem(sessions, logger))
		v1.PATCH("/cart/items/:id", handlers.HandleUpdateCartItem(sessions, logger))
		v1.DELETE("/cart/items/:id", handlers.HandleRemoveCartItem(sessions, logger))
		v1.GET("/cart", handlers.HandleViewCart(sessions, logger))
		v1.DELETE("/cart", handlers.HandleClearCart(sessions, logger))

		v1.POST("/checkout/quote", handlers.HandleCheckoutQuote(sessions, logger))
		v1.POST("/checkout", handlers.HandlePlaceOrder(sessions, logger))

		v1.GET("/orders/:id", handlers.HandleGetOrder(orders, logger))

		// Admin routes (API-key guarded)
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.AdminAuth(cfg.Admin.APIKeyHash, logger))
		{
			adminRoutes.POST("/products", handlers.HandleCreateProduct(store, logger))
			adminRoutes.POST("/product-types", handlers.HandleCreateProductType(store, logger))
			adminRoutes.PATCH("/products/:id", handlers.HandleUpdateProduct(store, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
