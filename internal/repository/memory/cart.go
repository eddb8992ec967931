package memory

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

// CartRepository implements repository.CartRepository with an in-process map.
// A single mutex serializes every operation, so the add-or-merge
// read-modify-write cannot lose increments under concurrent requests.
type CartRepository struct {
	mu        sync.Mutex
	entries   map[string]*domain.CartEntry // keyed by entry ID
	byProduct map[string]string            // product ID -> entry ID
	order     []string                     // entry IDs in creation order
}

// NewCartRepository creates an empty in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		entries:   make(map[string]*domain.CartEntry),
		byProduct: make(map[string]string),
	}
}

// AddItem merges quantity into the existing entry for the product, or creates
// a new entry with the given ID. The whole operation runs under the lock.
func (r *CartRepository) AddItem(_ context.Context, entryID, productID string, quantity int) (*domain.CartEntry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existingID, ok := r.byProduct[productID]; ok {
		entry := r.entries[existingID]
		entry.Quantity += quantity
		copied := *entry
		return &copied, true, nil
	}

	entry := &domain.CartEntry{
		ID:        entryID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}
	r.entries[entryID] = entry
	r.byProduct[productID] = entryID
	r.order = append(r.order, entryID)

	copied := *entry
	return &copied, false, nil
}

// List returns all cart entries in creation order.
func (r *CartRepository) List(_ context.Context) ([]domain.CartEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]domain.CartEntry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, *r.entries[id])
	}
	return entries, nil
}

// Remove deletes the entry with the given ID, or returns a NotFound error.
func (r *CartRepository) Remove(_ context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[entryID]
	if !ok {
		return apperrors.NotFound("Cart item", entryID)
	}

	delete(r.entries, entryID)
	delete(r.byProduct, entry.ProductID)
	for i, id := range r.order {
		if id == entryID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear deletes every entry. Idempotent.
func (r *CartRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*domain.CartEntry)
	r.byProduct = make(map[string]string)
	r.order = nil
	return nil
}
