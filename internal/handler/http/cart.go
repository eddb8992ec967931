package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/service"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// addItemRequest is the JSON body for POST /api/cart. A missing quantity
// defaults to 1.
type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// lineItemResponse is the wire shape of one enriched cart row.
type lineItemResponse struct {
	ID        string  `json:"id"`
	Quantity  int     `json:"quantity"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Subtotal  float64 `json:"subtotal"`
}

// cartResponse is the wire shape of GET /api/cart.
type cartResponse struct {
	Items []lineItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func toCartResponse(view *domain.CartView) cartResponse {
	items := make([]lineItemResponse, 0, len(view.Items))
	for _, li := range view.Items {
		items = append(items, lineItemResponse{
			ID:        li.EntryID,
			Quantity:  li.Quantity,
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     domain.CentsToAmount(li.PriceCents),
			Image:     li.Image,
			Subtotal:  li.Subtotal(),
		})
	}
	return cartResponse{
		Items: items,
		Total: view.Total(),
	}
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetCart(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(view))
}

// AddItem handles POST /api/cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.InvalidInput("invalid request body"), h.logger)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	entry, merged, err := h.service.AddItem(r.Context(), req.ProductID, quantity)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	message := "Item added to cart"
	if merged {
		message = "Cart updated successfully"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": message,
		"id":      entry.ID,
	})
}

// RemoveItem handles DELETE /api/cart/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")

	if err := h.service.RemoveItem(r.Context(), entryID); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Item removed from cart",
	})
}
