package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db DB
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Seed inserts the given products, leaving already-present IDs untouched so
// repeated boots are safe.
func (r *ProductRepository) Seed(ctx context.Context, products []domain.Product) error {
	const query = `
		INSERT INTO products (id, name, price_cents, image)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	for _, p := range products {
		if _, err := r.db.Exec(ctx, query, p.ID, p.Name, p.PriceCents, p.Image); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}
	return nil
}

// List returns all products ordered by ID.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	const query = `
		SELECT id, name, price_cents, image
		FROM products
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// GetByID returns the product with the given ID, or a NotFound error.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = `
		SELECT id, name, price_cents, image
		FROM products
		WHERE id = $1`

	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.PriceCents, &p.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Product", id)
		}
		return nil, fmt.Errorf("query product: %w", err)
	}

	return &p, nil
}
