package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/service"
)

// CheckoutHandler handles HTTP requests for the checkout endpoint.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// submittedItem mirrors the cart line shape the client sends back at
// checkout. Prices arrive as decimal amounts and are converted to cents.
type submittedItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// checkoutRequest is the JSON body for POST /api/checkout.
type checkoutRequest struct {
	CartItems    []submittedItem     `json:"cartItems"`
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
}

// receiptResponse is the wire shape of a minted receipt.
type receiptResponse struct {
	ID           string              `json:"id"`
	Timestamp    time.Time           `json:"timestamp"`
	CustomerInfo domain.CustomerInfo `json:"customerInfo"`
	Items        []lineItemResponse  `json:"items"`
	Total        float64             `json:"total"`
	Status       string              `json:"status"`
}

func toReceiptResponse(receipt *domain.Receipt) receiptResponse {
	items := make([]lineItemResponse, 0, len(receipt.Items))
	for _, it := range receipt.Items {
		items = append(items, lineItemResponse{
			ID:        it.ID,
			Quantity:  it.Quantity,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     domain.CentsToAmount(it.PriceCents),
			Image:     it.Image,
			Subtotal:  domain.CentsToAmount(it.SubtotalCents()),
		})
	}
	return receiptResponse{
		ID:           receipt.ID,
		Timestamp:    receipt.Timestamp,
		CustomerInfo: receipt.CustomerInfo,
		Items:        items,
		Total:        receipt.Total(),
		Status:       receipt.Status,
	}
}

// Checkout handles POST /api/checkout.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.InvalidInput("invalid request body"), h.logger)
		return
	}

	items := make([]domain.SubmittedItem, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		items = append(items, domain.SubmittedItem{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Name:       it.Name,
			PriceCents: domain.AmountToCents(it.Price),
			Image:      it.Image,
			Quantity:   it.Quantity,
		})
	}

	receipt, err := h.service.Checkout(r.Context(), items, req.CustomerInfo)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, toReceiptResponse(receipt))
}
