package domain

import "time"

// Receipt status constants. Checkout has no payment integration, so the only
// status a receipt is ever minted with is completed.
const (
	ReceiptStatusCompleted = "completed"
)

// CustomerInfo is the buyer identity submitted with a checkout.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubmittedItem is one cart line as submitted by the client at checkout.
// The price is taken from the submission, not re-derived from the catalog;
// the receipt total is therefore computed over client-supplied prices.
type SubmittedItem struct {
	ID         string
	ProductID  string
	Name       string
	PriceCents int64
	Image      string
	Quantity   int
}

// SubtotalCents returns quantity x price for the submitted line.
func (i SubmittedItem) SubtotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}

// Receipt is the immutable record minted by a successful checkout. It is
// returned to the caller and not retained anywhere; the system keeps no
// order history.
type Receipt struct {
	ID           string
	Timestamp    time.Time
	CustomerInfo CustomerInfo
	Items        []SubmittedItem
	TotalCents   int64
	Status       string
}

// Total returns the receipt total as a decimal amount.
func (r Receipt) Total() float64 {
	return CentsToAmount(r.TotalCents)
}
