package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(products ...Product) func(string) (Product, bool) {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id string) (Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func TestNewCartView_Empty(t *testing.T) {
	view := NewCartView(nil, lookupFrom())

	assert.Empty(t, view.Items)
	assert.Equal(t, int64(0), view.TotalCents)
	assert.Equal(t, 0.0, view.Total())
}

func TestNewCartView_SubtotalsAndTotal(t *testing.T) {
	headphones := Product{ID: "1", Name: "Wireless Headphones", PriceCents: 9999}
	watch := Product{ID: "2", Name: "Smart Watch", PriceCents: 2499}

	now := time.Now().UTC()
	entries := []CartEntry{
		{ID: "e1", ProductID: "1", Quantity: 2, CreatedAt: now},
		{ID: "e2", ProductID: "2", Quantity: 3, CreatedAt: now},
	}

	view := NewCartView(entries, lookupFrom(headphones, watch))

	require.Len(t, view.Items, 2)
	assert.Equal(t, "e1", view.Items[0].EntryID)
	assert.Equal(t, int64(19998), view.Items[0].SubtotalCents)
	assert.Equal(t, 199.98, view.Items[0].Subtotal())
	assert.Equal(t, int64(7497), view.Items[1].SubtotalCents)
	assert.Equal(t, int64(27495), view.TotalCents)
	assert.Equal(t, 274.95, view.Total())
}

func TestNewCartView_TwoDecimalExactness(t *testing.T) {
	// 99.99 * 3 in float64 arithmetic drifts; in cents it is exact.
	p := Product{ID: "1", Name: "Wireless Headphones", PriceCents: 9999}
	entries := []CartEntry{{ID: "e1", ProductID: "1", Quantity: 3}}

	view := NewCartView(entries, lookupFrom(p))

	assert.Equal(t, int64(29997), view.TotalCents)
	assert.Equal(t, 299.97, view.Total())
}

func TestNewCartView_SkipsUnresolvableProducts(t *testing.T) {
	p := Product{ID: "1", Name: "Wireless Headphones", PriceCents: 9999}
	entries := []CartEntry{
		{ID: "e1", ProductID: "1", Quantity: 1},
		{ID: "e2", ProductID: "missing", Quantity: 5},
	}

	view := NewCartView(entries, lookupFrom(p))

	require.Len(t, view.Items, 1)
	assert.Equal(t, "e1", view.Items[0].EntryID)
	assert.Equal(t, int64(9999), view.TotalCents)
}

func TestNewCartView_PreservesEntryOrder(t *testing.T) {
	a := Product{ID: "a", PriceCents: 100}
	b := Product{ID: "b", PriceCents: 200}
	entries := []CartEntry{
		{ID: "e2", ProductID: "b", Quantity: 1},
		{ID: "e1", ProductID: "a", Quantity: 1},
	}

	view := NewCartView(entries, lookupFrom(a, b))

	require.Len(t, view.Items, 2)
	assert.Equal(t, "e2", view.Items[0].EntryID)
	assert.Equal(t, "e1", view.Items[1].EntryID)
}

func TestAmountToCents(t *testing.T) {
	assert.Equal(t, int64(9999), AmountToCents(99.99))
	assert.Equal(t, int64(0), AmountToCents(0))
	assert.Equal(t, int64(1), AmountToCents(0.005))
	assert.Equal(t, int64(10), AmountToCents(0.1))
	// 19.99 is not representable exactly in binary; rounding recovers it.
	assert.Equal(t, int64(1999), AmountToCents(19.99))
}

func TestCentsToAmount(t *testing.T) {
	assert.Equal(t, 99.99, CentsToAmount(9999))
	assert.Equal(t, 0.0, CentsToAmount(0))
	assert.Equal(t, 299.97, CentsToAmount(29997))
}

func TestProductPrice(t *testing.T) {
	p := Product{ID: "1", PriceCents: 2499}
	assert.Equal(t, 24.99, p.Price())
}
