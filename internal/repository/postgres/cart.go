package postgres

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

// CartRepository implements repository.CartRepository using PostgreSQL.
type CartRepository struct {
	db DB
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(db DB) *CartRepository {
	return &CartRepository{db: db}
}

// AddItem upserts the cart row for the product. The unique constraint on
// product_id plus ON CONFLICT DO UPDATE makes the merge a single atomic
// statement, so concurrent adds for the same product cannot lose increments.
// When the row already existed the returned ID differs from entryID, which is
// how the merge is detected.
func (r *CartRepository) AddItem(ctx context.Context, entryID, productID string, quantity int) (*domain.CartEntry, bool, error) {
	const query = `
		INSERT INTO cart_items (id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, product_id, quantity, created_at`

	var entry domain.CartEntry
	err := r.db.QueryRow(ctx, query, entryID, productID, quantity, time.Now().UTC()).
		Scan(&entry.ID, &entry.ProductID, &entry.Quantity, &entry.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("upsert cart item: %w", err)
	}

	merged := entry.ID != entryID
	return &entry, merged, nil
}

// List returns all cart entries in creation order.
func (r *CartRepository) List(ctx context.Context) ([]domain.CartEntry, error) {
	const query = `
		SELECT id, product_id, quantity, created_at
		FROM cart_items
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	var entries []domain.CartEntry
	for rows.Next() {
		var e domain.CartEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Quantity, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}

	return entries, nil
}

// Remove deletes the entry with the given ID, or returns a NotFound error.
func (r *CartRepository) Remove(ctx context.Context, entryID string) error {
	const query = `DELETE FROM cart_items WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Cart item", entryID)
	}
	return nil
}

// Clear deletes every cart entry. Idempotent.
func (r *CartRepository) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
