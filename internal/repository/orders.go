// Package repository stores placed orders so they can be looked up after
// checkout. Persistence beyond process lifetime is out of scope.
package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/pkg/errors"
)

// OrderRepository is the order store contract consumed by checkout and the
// API layer.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

type memoryOrderRepository struct {
	logger *zap.Logger

	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewMemoryOrderRepository creates an in-memory order store
func NewMemoryOrderRepository(logger *zap.Logger) OrderRepository {
	return &memoryOrderRepository{
		logger: logger,
		orders: make(map[string]*domain.Order),
	}
}

func (r *memoryOrderRepository) Save(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID()] = order
	return nil
}

func (r *memoryOrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	}
	return order, nil
}
