package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

func newTestCheckoutService(cart *mockCartRepository) *CheckoutService {
	return NewCheckoutService(cart, newTestProducer(), newTestLogger())
}

func submittedCart() []domain.SubmittedItem {
	return []domain.SubmittedItem{
		{ID: "e1", ProductID: "1", Name: "Wireless Headphones", PriceCents: 9999, Quantity: 1},
		{ID: "e2", ProductID: "2", Name: "Smart Watch", PriceCents: 2499, Quantity: 2},
	}
}

func validCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{Name: "Jane Doe", Email: "jane@example.com"}
}

func TestCheckout_Success(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)
	ctx := context.Background()

	cart.On("Clear", ctx).Return(nil)

	receipt, err := svc.Checkout(ctx, submittedCart(), validCustomer())

	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.False(t, receipt.Timestamp.IsZero())
	assert.Equal(t, "Jane Doe", receipt.CustomerInfo.Name)
	assert.Len(t, receipt.Items, 2)
	// 99.99 + 2 * 24.99 = 149.97
	assert.Equal(t, int64(14997), receipt.TotalCents)
	assert.Equal(t, 149.97, receipt.Total())
	assert.Equal(t, domain.ReceiptStatusCompleted, receipt.Status)

	cart.AssertExpectations(t)
}

func TestCheckout_EmptyCart(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)

	receipt, err := svc.Checkout(context.Background(), nil, validCustomer())

	assert.Nil(t, receipt)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Cart is empty")
	cart.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestCheckout_MissingName(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)

	customer := domain.CustomerInfo{Name: "   ", Email: "jane@example.com"}
	receipt, err := svc.Checkout(context.Background(), submittedCart(), customer)

	assert.Nil(t, receipt)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCheckout_MissingEmail(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)

	customer := domain.CustomerInfo{Name: "Jane Doe", Email: ""}
	receipt, err := svc.Checkout(context.Background(), submittedCart(), customer)

	assert.Nil(t, receipt)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCheckout_EmailWithoutAtSign(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)

	customer := domain.CustomerInfo{Name: "Jane Doe", Email: "not-an-email"}
	receipt, err := svc.Checkout(context.Background(), submittedCart(), customer)

	assert.Nil(t, receipt)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCheckout_ZeroQuantityItem(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)

	items := []domain.SubmittedItem{
		{ID: "e1", ProductID: "1", PriceCents: 9999, Quantity: 0},
	}
	receipt, err := svc.Checkout(context.Background(), items, validCustomer())

	assert.Nil(t, receipt)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCheckout_NegativePriceItem(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)

	items := []domain.SubmittedItem{
		{ID: "e1", ProductID: "1", PriceCents: -100, Quantity: 1},
	}
	receipt, err := svc.Checkout(context.Background(), items, validCustomer())

	assert.Nil(t, receipt)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCheckout_ClearFailureStillReturnsReceipt(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)
	ctx := context.Background()

	cart.On("Clear", ctx).Return(errors.New("connection refused"))

	receipt, err := svc.Checkout(ctx, submittedCart(), validCustomer())

	require.NoError(t, err)
	assert.NotNil(t, receipt)
	assert.Equal(t, domain.ReceiptStatusCompleted, receipt.Status)

	cart.AssertExpectations(t)
}

func TestCheckout_SnapshotsItems(t *testing.T) {
	cart := new(mockCartRepository)
	svc := newTestCheckoutService(cart)
	ctx := context.Background()

	cart.On("Clear", ctx).Return(nil)

	items := submittedCart()
	receipt, err := svc.Checkout(ctx, items, validCustomer())
	require.NoError(t, err)

	// Mutating the caller's slice must not affect the minted receipt.
	items[0].Quantity = 99
	assert.Equal(t, 1, receipt.Items[0].Quantity)
}
