package memory

import (
	"context"
	"sync"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

// ProductRepository implements repository.ProductRepository with an in-process
// map. The catalog is written once by Seed and read-only afterwards; the
// RWMutex keeps Seed safe against concurrent readers during startup.
type ProductRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Product
	order []string
}

// NewProductRepository creates an empty in-memory product repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID: make(map[string]domain.Product),
	}
}

// Seed loads the given products, skipping IDs that are already present.
func (r *ProductRepository) Seed(_ context.Context, products []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		if _, ok := r.byID[p.ID]; ok {
			continue
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return nil
}

// List returns all products in seed order.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.byID[id])
	}
	return products, nil
}

// GetByID returns the product with the given ID, or a NotFound error.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("Product", id)
	}
	return &p, nil
}
