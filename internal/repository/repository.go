package repository

import (
	"context"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

// ProductRepository defines the interface for catalog persistence. The
// catalog is seeded once at startup and read-only afterwards.
type ProductRepository interface {
	// Seed loads the given products, replacing nothing: products already
	// present are left untouched so repeated boots are safe.
	Seed(ctx context.Context, products []domain.Product) error

	// List returns all products in seed order.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID returns the product with the given ID, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// CartRepository defines the interface for cart persistence. The cart is a
// single process-wide cart; there is no per-user keying.
type CartRepository interface {
	// AddItem adds quantity of the product to the cart. If an entry for the
	// product already exists its quantity is incremented, otherwise a new
	// entry is created with the given ID. The read-modify-write is atomic:
	// concurrent calls for the same product must never lose an increment.
	// Returns the affected entry and whether it merged into an existing one.
	AddItem(ctx context.Context, entryID, productID string, quantity int) (*domain.CartEntry, bool, error)

	// List returns all cart entries in creation order.
	List(ctx context.Context) ([]domain.CartEntry, error)

	// Remove deletes the entry with the given ID, or returns ErrNotFound.
	Remove(ctx context.Context, entryID string) error

	// Clear deletes every entry. Idempotent.
	Clear(ctx context.Context) error
}
