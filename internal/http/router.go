package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/product-inventory/docs"
	"github.com/rogerio-castellano/product-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-inventory/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter mounts the inventory API of s. A nil limiter disables rate
// limiting.
func NewRouter(s *handlers.Server, limiter *rl.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(logMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(RateLimitMiddleware(limiter))
		}

		r.Route("/products", func(r chi.Router) {
			r.Post("/", s.CreateProductHandler)
			r.Get("/", s.GetProductsHandler)
			r.Get("/search", s.SearchProductsHandler)
			r.Post("/import", s.ImportProductsHandler)
			r.Post("/expired/remove", s.RemoveExpiredHandler)
			r.Get("/{id}", s.GetProductByIDHandler)
			r.Delete("/{id}", s.DeleteProductHandler)
			r.Post("/{id}/sell", s.SellProductHandler)
			r.Post("/{id}/restock", s.RestockProductHandler)
		})

		r.Get("/inventory/value", s.GetTotalValueHandler)
		r.Post("/inventory/save", s.SaveInventoryHandler)
		r.Post("/inventory/load", s.LoadInventoryHandler)
		r.Get("/metrics/dashboard", s.GetDashboardMetricsHandler)
	})

	return r
}
