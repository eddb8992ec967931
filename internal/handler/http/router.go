package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/health"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/middleware"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/service"
)

// NewRouter creates a chi router with all shop API routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	cartService *service.CartService,
	checkoutService *service.CheckoutService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	corsConfig middleware.CORSConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(corsConfig))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("shop"))
	r.Use(middleware.Tracing("shop"))
	r.Use(middleware.RequestLogger(logger))

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Shop API endpoints
	productHandler := NewProductHandler(catalogService, logger)
	cartHandler := NewCartHandler(cartService, logger)
	checkoutHandler := NewCheckoutHandler(checkoutService, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)

		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart", cartHandler.AddItem)
		r.Delete("/cart/{id}", cartHandler.RemoveItem)

		r.Post("/checkout", checkoutHandler.Checkout)
	})

	return r
}
