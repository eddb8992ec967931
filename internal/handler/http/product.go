package http

import (
	"log/slog"
	"net/http"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/service"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// productResponse is the wire shape of a catalog product.
type productResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price(),
		Image: p.Image,
	}
}

// ListProducts handles GET /api/products. The response is a bare array, not
// an envelope, for compatibility with the existing client.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	writeJSON(w, http.StatusOK, out)
}
