package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/catalogue"
	"github.com/yourlocalshop/storefront/internal/config"
	"github.com/yourlocalshop/storefront/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS product_types (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
	id      TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	price   NUMERIC(12,2) NOT NULL CHECK (price >= 0),
	stock   INTEGER NOT NULL CHECK (stock >= 0),
	type_id TEXT REFERENCES product_types(id)
);
`

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := catalogue.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create schema: %v\n", err)
		os.Exit(1)
	}

	store := catalogue.NewPostgresCatalogue(db, logger)

	types := []domain.ProductType{
		{ID: "dairy", Name: "Dairy", Description: "Milk, eggs and cheese"},
		{ID: "bakery", Name: "Bakery", Description: "Fresh bread and pastries"},
		{ID: "pantry", Name: "Pantry", Description: "Shelf-stable staples"},
	}
	for _, t := range types {
		if err := store.AddType(ctx, t); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to add type %s (may already exist): %v\n", t.ID, err)
		}
	}

	products := []domain.Product{
		{ID: "MILK1", Name: "Full Cream Milk 2L", Price: decimal.RequireFromString("3.50"), Stock: 20, TypeID: "dairy"},
		{ID: "EGGS1", Name: "Free Range Eggs 12pk", Price: decimal.RequireFromString("7.20"), Stock: 30, TypeID: "dairy"},
		{ID: "BREAD1", Name: "Sourdough Loaf", Price: decimal.RequireFromString("6.00"), Stock: 15, TypeID: "bakery"},
		{ID: "RICE1", Name: "Jasmine Rice 5kg", Price: decimal.RequireFromString("14.00"), Stock: 40, TypeID: "pantry"},
	}

	created := 0
	for _, p := range products {
		if err := store.AddProduct(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to add product %s (may already exist): %v\n", p.ID, err)
			continue
		}
		created++
	}

	fmt.Printf("Seed complete: %d of %d products created in %s\n", created, len(products), cfg.Database.DBName)
}
