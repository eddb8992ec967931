package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/event"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/repository"
)

// MaxQuantityPerItem caps a single cart entry's quantity to prevent abuse.
const MaxQuantityPerItem = 1000

// CartService implements the business logic for cart operations against the
// single process-wide cart.
type CartService struct {
	products repository.ProductRepository
	cart     repository.CartRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	products repository.ProductRepository,
	cart repository.CartRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *CartService {
	return &CartService{
		products: products,
		cart:     cart,
		producer: producer,
		logger:   logger,
	}
}

// AddItem adds quantity of the product to the cart. If the product is already
// in the cart the existing entry's quantity is incremented; the cart never
// holds two entries for the same product. Returns the affected entry and
// whether it merged into an existing one.
func (s *CartService) AddItem(ctx context.Context, productID string, quantity int) (*domain.CartEntry, bool, error) {
	if productID == "" {
		return nil, false, apperrors.InvalidInput("Product ID is required")
	}
	if quantity <= 0 {
		return nil, false, apperrors.InvalidInput("Quantity must be greater than 0")
	}
	if quantity > MaxQuantityPerItem {
		return nil, false, apperrors.InvalidInput(fmt.Sprintf("Quantity must not exceed %d", MaxQuantityPerItem))
	}

	// The product must resolve in the catalog before touching the cart.
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, false, err
	}

	entry, merged, err := s.cart.AddItem(ctx, uuid.New().String(), productID, quantity)
	if err != nil {
		return nil, false, fmt.Errorf("add cart item: %w", err)
	}

	if err := s.producer.PublishCartUpdated(ctx, entry, merged); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("entry_id", entry.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("entry_id", entry.ID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Bool("merged", merged),
	)

	return entry, merged, nil
}

// GetCart joins every cart entry with its product, computes subtotals, and
// returns the enriched view with the total. Entries are listed in creation
// order; an empty cart yields an empty item list and a zero total.
func (s *CartService) GetCart(ctx context.Context) (*domain.CartView, error) {
	entries, err := s.cart.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := domain.NewCartView(entries, func(productID string) (domain.Product, bool) {
		p, ok := byID[productID]
		return p, ok
	})

	return &view, nil
}

// RemoveItem deletes the cart entry with the given ID entirely; there is no
// partial-quantity removal.
func (s *CartService) RemoveItem(ctx context.Context, entryID string) error {
	if entryID == "" {
		return apperrors.InvalidInput("Cart item ID is required")
	}

	if err := s.cart.Remove(ctx, entryID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("entry_id", entryID),
	)

	return nil
}

// Clear removes all cart entries. Idempotent.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.cart.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared")

	return nil
}
