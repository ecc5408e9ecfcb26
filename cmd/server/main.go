package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/api"
	"github.com/yourlocalshop/storefront/internal/api/handlers"
	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/config"
	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/internal/repository"
	"github.com/yourlocalshop/storefront/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Build the catalogue backend
	var store catalogue.Store
	switch cfg.CatalogueBackend {
	case "postgres":
		db, err := catalogue.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		store = catalogue.NewPostgresCatalogue(db, logger)
	default:
		memory := catalogue.NewMemoryCatalogue(logger)
		if err := seedDemoCatalogue(memory); err != nil {
			logger.Fatal("failed to seed demo catalogue", zap.Error(err))
		}
		store = memory
	}

	shippingPolicy, err := service.NewShippingPolicy(cfg.Shipping.FlatRate, cfg.Shipping.FreeOver)
	if err != nil {
		logger.Fatal("invalid shipping configuration", zap.Error(err))
	}

	// No gateway injected: payments succeed deterministically for the demo.
	payments := service.NewPaymentService(nil, logger)
	orders := repository.NewMemoryOrderRepository(logger)

	sessions := handlers.NewSessions(func() *handlers.Session {
		cart := service.NewCart(store, logger)
		checkout := service.NewCheckoutService(cart, shippingPolicy, payments, orders, logger)
		return &handlers.Session{
			Cart:  cart,
			Front: service.NewStoreFront(store, cart, checkout),
		}
	})

	router := api.NewRouter(cfg, store, orders, sessions, logger)

	logger.Info("starting storefront server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("catalogue_backend", cfg.CatalogueBackend),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// seedDemoCatalogue loads a small set of products so the in-memory backend
// is browsable out of the box.
func seedDemoCatalogue(store catalogue.Store) error {
	ctx := context.Background()

	types := []domain.ProductType{
		{ID: "dairy", Name: "Dairy", Description: "Milk, eggs and cheese"},
		{ID: "bakery", Name: "Bakery", Description: "Fresh bread and pastries"},
	}
	for _, t := range types {
		if err := store.AddType(ctx, t); err != nil {
			return err
		}
	}

	products := []domain.Product{
		{ID: "MILK1", Name: "Full Cream Milk 2L", Price: decimal.RequireFromString("3.50"), Stock: 20, TypeID: "dairy"},
		{ID: "EGGS1", Name: "Free Range Eggs 12pk", Price: decimal.RequireFromString("7.20"), Stock: 30, TypeID: "dairy"},
		{ID: "BREAD1", Name: "Sourdough Loaf", Price: decimal.RequireFromString("6.00"), Stock: 15, TypeID: "bakery"},
	}
	for _, p := range products {
		if err := store.AddProduct(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
