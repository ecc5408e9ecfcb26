package catalogue

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/pkg/errors"
)

func seededCatalogue(t *testing.T) *MemoryCatalogue {
	t.Helper()
	cat := NewMemoryCatalogue(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, cat.AddType(ctx, domain.ProductType{ID: "dairy", Name: "Dairy"}))
	require.NoError(t, cat.AddType(ctx, domain.ProductType{ID: "bakery", Name: "Bakery"}))

	require.NoError(t, cat.AddProduct(ctx, domain.Product{
		ID: "MILK1", Name: "Full Cream Milk", Price: decimal.RequireFromString("3.50"), Stock: 20, TypeID: "dairy",
	}))
	require.NoError(t, cat.AddProduct(ctx, domain.Product{
		ID: "BREAD1", Name: "Sourdough Loaf", Price: decimal.RequireFromString("6.00"), Stock: 15, TypeID: "bakery",
	}))
	return cat
}

func TestMemoryCatalogue_GetProduct(t *testing.T) {
	cat := seededCatalogue(t)
	ctx := context.Background()

	p, err := cat.GetProduct(ctx, "MILK1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Full Cream Milk", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("3.50")))

	// Absence is (nil, nil), never an error.
	p, err = cat.GetProduct(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryCatalogue_GetProductReturnsCopy(t *testing.T) {
	cat := seededCatalogue(t)
	ctx := context.Background()

	p, err := cat.GetProduct(ctx, "MILK1")
	require.NoError(t, err)
	p.Stock = 0

	again, err := cat.GetProduct(ctx, "MILK1")
	require.NoError(t, err)
	assert.Equal(t, 20, again.Stock)
}

func TestMemoryCatalogue_Search(t *testing.T) {
	cat := seededCatalogue(t)
	ctx := context.Background()

	results, err := cat.SearchProducts(ctx, "milk")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "MILK1", results[0].ID)

	// Empty query lists everything, sorted by id.
	results, err = cat.SearchProducts(ctx, "   ")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "BREAD1", results[0].ID)

	results, err = cat.SearchProducts(ctx, "caviar")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMemoryCatalogue_FilterByType(t *testing.T) {
	cat := seededCatalogue(t)

	results, err := cat.FilterByType(context.Background(), "bakery")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "BREAD1", results[0].ID)
}

func TestMemoryCatalogue_AddValidation(t *testing.T) {
	cat := seededCatalogue(t)
	ctx := context.Background()

	err := cat.AddProduct(ctx, domain.Product{ID: "MILK1", Name: "Dup", Price: decimal.Zero})
	assert.Error(t, err, "duplicate product id")

	err = cat.AddProduct(ctx, domain.Product{ID: "X1", Name: "X", Price: decimal.Zero, TypeID: "unknown"})
	assert.Error(t, err, "unknown type")

	err = cat.AddProduct(ctx, domain.Product{ID: "X1", Name: "X", Price: decimal.RequireFromString("-1")})
	assert.Error(t, err, "negative price")

	err = cat.AddType(ctx, domain.ProductType{ID: "DAIRY", Name: "Dairy Again"})
	assert.Error(t, err, "type ids are unique case-insensitively")
}

func TestMemoryCatalogue_Updates(t *testing.T) {
	cat := seededCatalogue(t)
	ctx := context.Background()

	require.NoError(t, cat.UpdatePrice(ctx, "MILK1", decimal.RequireFromString("3.80")))
	require.NoError(t, cat.UpdateStock(ctx, "MILK1", 5))

	p, err := cat.GetProduct(ctx, "MILK1")
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("3.80")))
	assert.Equal(t, 5, p.Stock)

	err = cat.UpdatePrice(ctx, "NOPE", decimal.Zero)
	assert.True(t, errors.IsNotFound(err))

	assert.Error(t, cat.UpdateStock(ctx, "MILK1", -1))
}
