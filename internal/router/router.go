package router

import (
	"net/http"

	"alsayed-store/internal/auth"
	"alsayed-store/internal/handler"
	"alsayed-store/internal/i18n"
	"alsayed-store/internal/metrics"
	"alsayed-store/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Health   *handler.HealthHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Language *handler.LanguageHandler
	Country  *handler.CountryHandler
}

// Options holds the cross-cutting dependencies of the middleware chain.
type Options struct {
	APIKey          string
	Languages       middleware.LanguageSource
	DefaultLanguage i18n.Lang
	Verifier        *auth.Verifier
	Metrics         *metrics.Metrics
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> Logging -> Metrics -> CORS -> APIKeyAuth -> Session -> Language -> Identity
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.CORS)
	r.Use(middleware.APIKeyAuth(opts.APIKey, logger))

	r.Get("/health", h.Health.Check)
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(logger))
		r.Use(middleware.Language(opts.Languages, opts.DefaultLanguage))
		r.Use(middleware.Identity(opts.Verifier, logger))

		r.Get("/products", h.Product.List)
		r.Get("/products/{slug}", h.Product.GetBySlug)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.Get)
			r.Delete("/", h.Cart.Clear)
			r.Post("/items", h.Cart.AddItem)
			r.Patch("/items", h.Cart.UpdateItem)
			r.Delete("/items", h.Cart.RemoveItem)
			r.Post("/open", h.Cart.Open)
			r.Post("/close", h.Cart.Close)
			r.Post("/toggle", h.Cart.Toggle)
		})

		r.Post("/checkout", h.Checkout.PlaceOrder)
		r.Get("/orders/track/{orderNumber}", h.Order.Track)
		r.With(middleware.RequireUser).Get("/profile/orders", h.Order.ListMine)

		r.Get("/language", h.Language.Get)
		r.Put("/language", h.Language.Set)

		r.Get("/countries", h.Country.List)
		r.Get("/countries/{code}/regions", h.Country.Regions)
	})

	return r
}
