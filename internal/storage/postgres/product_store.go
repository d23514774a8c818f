package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// ProductStore implements storage.ProductStore using PostgreSQL.
type ProductStore struct {
	pool *Pool
}

// NewProductStore creates a new ProductStore.
func NewProductStore(pool *Pool) *ProductStore {
	return &ProductStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ProductStore = (*ProductStore)(nil)

// Insert adds a new product. Returns ErrDuplicateKey if product_id exists.
func (s *ProductStore) Insert(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (
			product_id, name, type, annual_yield_rate, risk_level,
			liquidity, taxation, guarantee, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.pool.Exec(ctx, query,
		p.ProductID, p.Name, p.Type, p.AnnualYieldRate, p.RiskLevel,
		p.Liquidity, p.Taxation, p.Guarantee, p.Description,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by its ID. Returns ErrNotFound if not exists.
func (s *ProductStore) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := selectProducts + ` WHERE product_id = $1`

	p, err := scanProduct(s.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// GetByType retrieves the first product of a type in catalog order.
// Returns ErrNotFound if no product has that type.
func (s *ProductStore) GetByType(ctx context.Context, productType string) (*domain.Product, error) {
	query := selectProducts + `
		WHERE type = $1
		ORDER BY name ASC
		LIMIT 1
	`

	p, err := scanProduct(s.pool.QueryRow(ctx, query, productType))
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get product by type: %w", err)
	}
	return p, nil
}

// GetAll retrieves all products in catalog order (name ASC).
func (s *ProductStore) GetAll(ctx context.Context) ([]*domain.Product, error) {
	query := selectProducts + ` ORDER BY name ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ProductID, &p.Name, &p.Type, &p.AnnualYieldRate, &p.RiskLevel,
			&p.Liquidity, &p.Taxation, &p.Guarantee, &p.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}

const selectProducts = `
	SELECT
		product_id, name, type, annual_yield_rate, risk_level,
		liquidity, taxation, guarantee, description
	FROM products
`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ProductID, &p.Name, &p.Type, &p.AnnualYieldRate, &p.RiskLevel,
		&p.Liquidity, &p.Taxation, &p.Guarantee, &p.Description,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
