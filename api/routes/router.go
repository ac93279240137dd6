package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bloomcart/checkout-backend/api/controllers"
	"github.com/bloomcart/checkout-backend/api/middleware"
	cartsvc "github.com/bloomcart/checkout-backend/internal/cart"
	checkoutsvc "github.com/bloomcart/checkout-backend/internal/checkout"
	"github.com/bloomcart/checkout-backend/pkg/config"
	"github.com/bloomcart/checkout-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisP controllers.Pinger,
	checkoutService checkoutsvc.Service,
	cartService cartsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Get("/quote", controllers.CartQuote(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{itemId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{itemId}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Route("/checkout/sessions", func(r chi.Router) {
			r.Post("/", controllers.CheckoutSessionCreate(checkoutService, logg))
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", controllers.CheckoutSessionFetch(checkoutService, logg))
				r.Patch("/fields", controllers.CheckoutSetField(checkoutService, logg))
				r.Post("/advance", controllers.CheckoutAdvance(checkoutService, logg))
				r.Post("/retreat", controllers.CheckoutRetreat(checkoutService, logg))
				r.Post("/submit", controllers.CheckoutSubmit(checkoutService, logg))
			})
		})
	})

	return r
}
