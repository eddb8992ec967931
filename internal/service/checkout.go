package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/validator"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/event"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/repository"
)

// customerPayload carries the validation rules for submitted customer info.
// The email floor is deliberately loose: anything containing "@" passes.
type customerPayload struct {
	Name  string `validate:"required"`
	Email string `validate:"required,contains=@"`
}

// CheckoutService mints receipts for submitted carts. There is no payment
// integration; every successful checkout completes immediately.
type CheckoutService struct {
	cart     repository.CartRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(cart repository.CartRepository, producer *event.Producer, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		producer: producer,
		logger:   logger,
	}
}

// Checkout validates the submitted cart snapshot and customer info, computes
// the total, and returns a completed receipt. The total is summed over the
// submitted items' prices, matching the wire contract the browser client
// already relies on; it is NOT re-derived from the catalog. As a side effect
// the cart is cleared best-effort: a clear failure is logged but never
// withholds the receipt.
func (s *CheckoutService) Checkout(ctx context.Context, items []domain.SubmittedItem, customer domain.CustomerInfo) (*domain.Receipt, error) {
	if len(items) == 0 {
		return nil, apperrors.InvalidInput("Cart is empty")
	}
	payload := customerPayload{
		Name:  strings.TrimSpace(customer.Name),
		Email: strings.TrimSpace(customer.Email),
	}
	if err := validator.Validate(payload); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, apperrors.InvalidInput("Item quantity must be greater than 0")
		}
		if item.PriceCents < 0 {
			return nil, apperrors.InvalidInput("Item price must not be negative")
		}
	}

	var totalCents int64
	for _, item := range items {
		totalCents += item.SubtotalCents()
	}

	receipt := &domain.Receipt{
		ID:           uuid.New().String(),
		Timestamp:    time.Now().UTC(),
		CustomerInfo: customer,
		Items:        append([]domain.SubmittedItem{}, items...),
		TotalCents:   totalCents,
		Status:       domain.ReceiptStatusCompleted,
	}

	// Best-effort clear: checkout success is not contingent on it.
	if err := s.cart.Clear(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("receipt_id", receipt.ID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishCheckoutCompleted(ctx, receipt); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
			slog.String("receipt_id", receipt.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("receipt_id", receipt.ID),
		slog.Int("item_count", len(receipt.Items)),
		slog.Int64("total_cents", receipt.TotalCents),
	)

	return receipt, nil
}
