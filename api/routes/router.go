package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techmart-labs/techmart-backend/api/controllers"
	"github.com/techmart-labs/techmart-backend/api/middleware"
	authsvc "github.com/techmart-labs/techmart-backend/internal/auth"
	"github.com/techmart-labs/techmart-backend/internal/catalog"
	checkoutsvc "github.com/techmart-labs/techmart-backend/internal/checkout"
	productsvc "github.com/techmart-labs/techmart-backend/internal/products"
	"github.com/techmart-labs/techmart-backend/internal/session"
	"github.com/techmart-labs/techmart-backend/pkg/config"
	"github.com/techmart-labs/techmart-backend/pkg/logger"
	"github.com/techmart-labs/techmart-backend/pkg/metrics"
)

// RouterParams groups everything the HTTP surface needs.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	Catalog  *catalog.Catalog
	Store    *session.Store
	Backend  controllers.Pinger
	Auth     authsvc.Service
	Products productsvc.Service
	Checkout checkoutsvc.Service

	HTTPMetrics *metrics.HTTPMetrics
	Registry    *prometheus.Registry
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger, p.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.Backend))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(p.Auth, p.Logger))
			r.Post("/register", controllers.AuthRegister(p.Auth, p.Logger))
			r.Post("/logout", controllers.AuthLogout(p.Auth, p.Logger))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(p.Products, p.Logger))
			r.Get("/featured", controllers.ProductsFeatured(p.Products, p.Logger))
			r.Get("/categories", controllers.ProductsCategories(p.Products, p.Logger))
			r.Get("/brands", controllers.ProductsBrands(p.Products, p.Logger))
			r.Get("/{productId}", controllers.ProductsGet(p.Products, p.Logger))
		})

		r.Get("/state", controllers.StateGet(p.Store, p.Logger))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(p.Store, p.Logger))
			r.Delete("/", controllers.CartClear(p.Store, p.Logger))
			r.Post("/items", controllers.CartAddItem(p.Store, p.Catalog, p.Logger))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(p.Store, p.Logger))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(p.Store, p.Logger))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistGet(p.Store, p.Logger))
			r.Post("/items", controllers.WishlistAddItem(p.Store, p.Catalog, p.Logger))
			r.Delete("/items/{productId}", controllers.WishlistRemoveItem(p.Store, p.Logger))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(p.Config.JWT, p.Logger))

			r.Get("/auth/me", controllers.AuthMe(p.Auth, p.Logger))
			r.Patch("/auth/me", controllers.AuthUpdateProfile(p.Auth, p.Logger))

			r.Get("/checkout/quote", controllers.CheckoutQuote(p.Checkout, p.Logger))
			r.Post("/checkout", controllers.CheckoutPlaceOrder(p.Checkout, p.Logger))

			r.Get("/orders", controllers.OrdersList(p.Store, p.Logger))
			r.Get("/orders/{orderId}", controllers.OrdersGet(p.Store, p.Logger))
		})
	})

	return r
}
