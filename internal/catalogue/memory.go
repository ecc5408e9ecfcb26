package catalogue

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/pkg/errors"
)

// MemoryCatalogue is an in-process product store. The catalogue is the one
// shared, read-mostly resource when carts belong to separate sessions, so
// access is guarded by an RWMutex; carts themselves are never shared.
type MemoryCatalogue struct {
	logger *zap.Logger

	mu       sync.RWMutex
	types    map[string]domain.ProductType
	products map[string]domain.Product
}

// NewMemoryCatalogue creates an empty in-memory catalogue
func NewMemoryCatalogue(logger *zap.Logger) *MemoryCatalogue {
	return &MemoryCatalogue{
		logger:   logger,
		types:    make(map[string]domain.ProductType),
		products: make(map[string]domain.Product),
	}
}

func (c *MemoryCatalogue) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *MemoryCatalogue) ListProducts(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collect(func(domain.Product) bool { return true }), nil
}

// SearchProducts matches the query case-insensitively against product names.
// An empty query lists everything.
func (c *MemoryCatalogue) SearchProducts(_ context.Context, query string) ([]domain.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	c.mu.RLock()
	defer c.mu.RUnlock()
	if q == "" {
		return c.collect(func(domain.Product) bool { return true }), nil
	}
	return c.collect(func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	}), nil
}

func (c *MemoryCatalogue) FilterByType(_ context.Context, typeID string) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collect(func(p domain.Product) bool { return p.TypeID == typeID }), nil
}

// AddType registers a product category. Type ids are unique,
// case-insensitively.
func (c *MemoryCatalogue) AddType(_ context.Context, t domain.ProductType) error {
	if strings.TrimSpace(t.ID) == "" {
		return &errors.ErrValidation{Field: "type_id", Message: "must not be empty"}
	}
	if strings.TrimSpace(t.Name) == "" {
		return &errors.ErrValidation{Field: "name", Message: "must not be empty"}
	}

	key := strings.ToLower(t.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.types[key]; exists {
		return &errors.ErrValidation{Field: "type_id", Message: "already registered"}
	}
	c.types[key] = t
	return nil
}

func (c *MemoryCatalogue) AddProduct(_ context.Context, p domain.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return &errors.ErrValidation{Field: "product_id", Message: "must not be empty"}
	}
	if strings.TrimSpace(p.Name) == "" {
		return &errors.ErrValidation{Field: "name", Message: "must not be empty"}
	}
	if p.Price.IsNegative() {
		return &errors.ErrValidation{Field: "price", Message: "must not be negative"}
	}
	if p.Stock < 0 {
		return &errors.ErrValidation{Field: "stock", Message: "must not be negative"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.products[p.ID]; exists {
		return &errors.ErrValidation{Field: "product_id", Message: "already registered"}
	}
	if p.TypeID != "" {
		if _, ok := c.types[strings.ToLower(p.TypeID)]; !ok {
			return &errors.ErrValidation{Field: "type_id", Message: "unknown product type"}
		}
	}
	c.products[p.ID] = p
	c.logger.Info("product added to catalogue",
		zap.String("product_id", p.ID),
		zap.String("price", p.Price.StringFixed(2)),
		zap.Int("stock", p.Stock),
	)
	return nil
}

func (c *MemoryCatalogue) UpdatePrice(_ context.Context, productID string, price decimal.Decimal) error {
	if price.IsNegative() {
		return &errors.ErrValidation{Field: "price", Message: "must not be negative"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[productID]
	if !ok {
		return &errors.ErrNotFound{Resource: "product", ID: productID}
	}
	p.Price = price
	c.products[productID] = p
	return nil
}

func (c *MemoryCatalogue) UpdateStock(_ context.Context, productID string, stock int) error {
	if stock < 0 {
		return &errors.ErrValidation{Field: "stock", Message: "must not be negative"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[productID]
	if !ok {
		return &errors.ErrNotFound{Resource: "product", ID: productID}
	}
	p.Stock = stock
	c.products[productID] = p
	return nil
}

// collect copies matching products, sorted by id for stable listings.
// Callers must hold at least a read lock.
func (c *MemoryCatalogue) collect(match func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
