package domain

import (
	"math"
	"time"
)

// CartEntry is one row in the cart binding a product to a quantity.
// There is at most one entry per product: adding the same product again
// increments the existing entry's quantity instead of creating a second row.
type CartEntry struct {
	ID        string
	ProductID string
	Quantity  int
	CreatedAt time.Time
}

// LineItem is a cart entry enriched with its product's details and a computed
// subtotal. Line items are derived on every read and never stored.
type LineItem struct {
	EntryID       string
	ProductID     string
	Name          string
	PriceCents    int64
	Image         string
	Quantity      int
	SubtotalCents int64
}

// Subtotal returns the line subtotal as a decimal amount.
func (li LineItem) Subtotal() float64 {
	return CentsToAmount(li.SubtotalCents)
}

// CartView is the enriched, totalled read model of the cart.
type CartView struct {
	Items      []LineItem
	TotalCents int64
}

// Total returns the cart total as a decimal amount rounded to 2 places.
// Totals are accumulated in integer cents, so the conversion is exact.
func (v CartView) Total() float64 {
	return CentsToAmount(v.TotalCents)
}

// NewCartView joins cart entries with their products into line items and sums
// the total. Entries whose product cannot be resolved are skipped; the seeded
// catalog is immutable so that only happens on corrupted state.
func NewCartView(entries []CartEntry, lookup func(productID string) (Product, bool)) CartView {
	view := CartView{Items: []LineItem{}}
	for _, e := range entries {
		p, ok := lookup(e.ProductID)
		if !ok {
			continue
		}
		li := LineItem{
			EntryID:       e.ID,
			ProductID:     p.ID,
			Name:          p.Name,
			PriceCents:    p.PriceCents,
			Image:         p.Image,
			Quantity:      e.Quantity,
			SubtotalCents: p.PriceCents * int64(e.Quantity),
		}
		view.Items = append(view.Items, li)
		view.TotalCents += li.SubtotalCents
	}
	return view
}

// AmountToCents converts a decimal money amount to integer cents using
// half-up rounding (0.005 rounds away from zero). This is the single place
// where decimal input is rounded; all arithmetic after it is cent-exact.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CentsToAmount converts integer cents back to a decimal amount.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
