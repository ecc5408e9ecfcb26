package catalogue

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourlocalshop/storefront/internal/config"
	"github.com/yourlocalshop/storefront/internal/domain"
	"github.com/yourlocalshop/storefront/pkg/errors"
)

// NewConnection opens a postgres connection for the catalogue
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// PostgresCatalogue serves product lookups from postgres. Prices are stored
// as NUMERIC and scanned through strings to keep them exact.
type PostgresCatalogue struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresCatalogue creates a postgres-backed catalogue
func NewPostgresCatalogue(db *sql.DB, logger *zap.Logger) *PostgresCatalogue {
	return &PostgresCatalogue{
		db:     db,
		logger: logger,
	}
}

func (c *PostgresCatalogue) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT id, name, price, stock, type_id
		FROM products
		WHERE id = $1
	`

	p, err := scanProduct(c.db.QueryRowContext(ctx, query, productID))
	if err == sql.ErrNoRows {
		// Absence is not an error on this contract.
		return nil, nil
	}
	if err != nil {
		c.logger.Error("Failed to get product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (c *PostgresCatalogue) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, price, stock, type_id
		FROM products
		ORDER BY id
	`
	return c.queryProducts(ctx, query)
}

func (c *PostgresCatalogue) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	stmt := `
		SELECT id, name, price, stock, type_id
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`
	return c.queryProducts(ctx, stmt, query)
}

func (c *PostgresCatalogue) FilterByType(ctx context.Context, typeID string) ([]domain.Product, error) {
	stmt := `
		SELECT id, name, price, stock, type_id
		FROM products
		WHERE type_id = $1
		ORDER BY id
	`
	return c.queryProducts(ctx, stmt, typeID)
}

func (c *PostgresCatalogue) AddType(ctx context.Context, t domain.ProductType) error {
	query := `
		INSERT INTO product_types (id, name, description)
		VALUES ($1, $2, $3)
	`

	_, err := c.db.ExecContext(ctx, query, t.ID, t.Name, t.Description)
	if err != nil {
		c.logger.Error("Failed to add product type", zap.Error(err))
		return err
	}
	return nil
}

func (c *PostgresCatalogue) AddProduct(ctx context.Context, p domain.Product) error {
	query := `
		INSERT INTO products (id, name, price, stock, type_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := c.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Price.String(),
		p.Stock,
		p.TypeID,
	)
	if err != nil {
		c.logger.Error("Failed to add product", zap.Error(err))
		return err
	}
	return nil
}

func (c *PostgresCatalogue) UpdatePrice(ctx context.Context, productID string, price decimal.Decimal) error {
	if price.IsNegative() {
		return &errors.ErrValidation{Field: "price", Message: "must not be negative"}
	}

	query := `UPDATE products SET price = $2 WHERE id = $1`

	res, err := c.db.ExecContext(ctx, query, productID, price.String())
	if err != nil {
		c.logger.Error("Failed to update price", zap.Error(err))
		return err
	}
	return c.requireRow(res, productID)
}

func (c *PostgresCatalogue) UpdateStock(ctx context.Context, productID string, stock int) error {
	if stock < 0 {
		return &errors.ErrValidation{Field: "stock", Message: "must not be negative"}
	}

	query := `UPDATE products SET stock = $2 WHERE id = $1`

	res, err := c.db.ExecContext(ctx, query, productID, stock)
	if err != nil {
		c.logger.Error("Failed to update stock", zap.Error(err))
		return err
	}
	return c.requireRow(res, productID)
}

func (c *PostgresCatalogue) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		c.logger.Error("Failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (c *PostgresCatalogue) requireRow(res sql.Result, productID string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &errors.ErrNotFound{Resource: "product", ID: productID}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var priceStr string
	var typeID sql.NullString

	if err := row.Scan(&p.ID, &p.Name, &priceStr, &p.Stock, &typeID); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid price for product %s: %w", p.ID, err)
	}
	p.Price = price

	if typeID.Valid {
		p.TypeID = typeID.String
	}
	return &p, nil
}
