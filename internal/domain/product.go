package domain

// Product is a purchasable catalog item. Products are seeded once at startup
// and never mutated afterwards.
type Product struct {
	ID         string
	Name       string
	PriceCents int64
	Image      string
}

// Price returns the product price as a decimal amount (e.g. 9999 -> 99.99).
func (p Product) Price() float64 {
	return CentsToAmount(p.PriceCents)
}
