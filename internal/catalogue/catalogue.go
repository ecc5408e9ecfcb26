// Package catalogue provides product lookup for the cart and the browsing
// surface of the storefront.
package catalogue

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yourlocalshop/storefront/internal/domain"
)

// Catalogue is the lookup contract consumed by the cart. GetProduct returns
// (nil, nil) for an absent product id; absence is never an error. Errors are
// reserved for infrastructure failures.
type Catalogue interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// Browser extends Catalogue with the read operations used by the storefront.
type Browser interface {
	Catalogue
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	FilterByType(ctx context.Context, typeID string) ([]domain.Product, error)
}

// Store extends Browser with the admin maintenance operations.
type Store interface {
	Browser
	AddType(ctx context.Context, t domain.ProductType) error
	AddProduct(ctx context.Context, p domain.Product) error
	UpdatePrice(ctx context.Context, productID string, price decimal.Decimal) error
	UpdateStock(ctx context.Context, productID string, stock int) error
}
