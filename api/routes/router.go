package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skyburst/storefront-backend/api/controllers"
	"github.com/skyburst/storefront-backend/api/middleware"
	cartsvc "github.com/skyburst/storefront-backend/internal/cart"
	checkoutsvc "github.com/skyburst/storefront-backend/internal/checkout"
	"github.com/skyburst/storefront-backend/pkg/config"
	"github.com/skyburst/storefront-backend/pkg/logger"
	"github.com/skyburst/storefront-backend/pkg/redis"
)

// RouterParams carry the wired collaborators for the HTTP surface.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	Redis       *redis.Client
	Carts       *cartsvc.Client
	Settle      *cartsvc.SettleTracker
	Coordinator *checkoutsvc.Coordinator
	Gatherer    prometheus.Gatherer
}

// NewRouter assembles the storefront HTTP surface.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(p.Config.CORS.AllowedOrigins),
	)

	var cachePinger redis.Pinger
	if p.Redis != nil {
		cachePinger = p.Redis
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, cachePinger))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart/{cartID}", func(r chi.Router) {
			r.Post("/quote", controllers.CartQuote(p.Carts, p.Redis, p.Settle, p.Logger))
			r.Post("/changed", controllers.CartChanged(p.Redis, p.Settle, p.Logger))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", controllers.CheckoutStart(p.Coordinator, p.Logger))
			r.Route("/{token}", func(r chi.Router) {
				r.Get("/", controllers.CheckoutStatus(p.Coordinator, p.Logger))
				r.Post("/events", controllers.CheckoutEvents(p.Coordinator, p.Logger))
				r.Post("/cancel", controllers.CheckoutCancel(p.Coordinator, p.Logger))
				r.Post("/resume", controllers.CheckoutResume(p.Coordinator, p.Logger))
				r.Post("/heartbeat", controllers.CheckoutHeartbeat(p.Coordinator, p.Logger))
			})
		})
	})

	return r
}
