package router

import (
	"net/http"

	"garabato-api/internal/config"
	"garabato-api/internal/handler"
	"garabato-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "garabato-api/docs" // generated swagger docs
)

// New assembles the HTTP application: global middleware, the health and docs
// endpoints, and the catalogue and payment route groups mounted under their
// path prefixes. Admin authentication applies only to mutating catalogue
// routes.
func New(
	productHandler *handler.ProductHandler,
	paypalHandler *handler.PayPalHandler,
	adminCfg config.AdminConfig,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Admin-Username", "X-Admin-Password"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.GetAll)
		r.Get("/{id}", productHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(adminCfg, logger))
			r.Post("/", productHandler.Create)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})
	})

	r.Route("/paypal", func(r chi.Router) {
		r.Post("/create-order", paypalHandler.CreateOrder)
		r.Post("/capture-order/{orderID}", paypalHandler.CaptureOrder)
	})

	return r
}
