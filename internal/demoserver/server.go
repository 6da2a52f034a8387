package demoserver

import (
	"net/http"

	"azushop-client/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig tunes the demo server's HTTP plumbing
type RouterConfig struct {
	// AllowedOrigins are the UI origins permitted by CORS
	AllowedOrigins []string
	// OpenAPI, when set, enables request validation against the
	// storefront contract
	OpenAPI *middleware.OpenAPIValidatorConfig
	// DisableRateLimit turns off per-IP limiting (tests)
	DisableRateLimit bool
}

// NewRouter builds the demo server's HTTP handler. The route shapes
// mirror the real backend's primary routes so the client's first
// candidate path always hits.
func NewRouter(store *Store, tokens *Tokens, cfg RouterConfig) http.Handler {
	users := NewUserHandler(store, tokens)
	products := NewProductHandler(store)
	categories := NewCategoryHandler(store)
	orders := NewOrderHandler(store)

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.AllowedOrigins))
	}
	r.Use(middleware.Metrics())
	if cfg.OpenAPI != nil {
		r.Use(middleware.OpenAPIValidator(cfg.OpenAPI))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	authed := middleware.Auth(tokens)
	admin := middleware.RequireAdmin()

	limited := func(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
		if cfg.DisableRateLimit {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.NewRateLimiter(requestsPerSecond, burst).Middleware()
	}
	authLimiter := limited(5, 10)
	apiLimiter := limited(20, 50)

	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authLimiter)
			r.Post("/register", users.Register)
			r.Post("/auth", users.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(apiLimiter)
			r.Post("/logout", users.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(authed, apiLimiter)
			r.Get("/profile", users.Profile)
			r.Put("/profile", users.UpdateProfile)
			r.Post("/profile/picture", users.UploadProfilePicture)
		})

		r.Group(func(r chi.Router) {
			r.Use(authed, admin, apiLimiter)
			r.Get("/", users.List)
			r.Get("/{id}", users.Get)
			r.Put("/{id}", users.Update)
			r.Delete("/{id}", users.Delete)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(apiLimiter)
			r.Get("/", products.List)
			r.Get("/allproducts", products.ListAll)
			r.Get("/top", products.Top)
			r.Get("/new", products.New)
			r.Post("/filtered-products", products.Filter)
			r.Get("/{id}", products.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(authed, apiLimiter)
			r.Post("/{id}/reviews", products.AddReview)
		})

		r.Group(func(r chi.Router) {
			r.Use(authed, admin, apiLimiter)
			r.Post("/", products.Create)
			r.Put("/{id}", products.Update)
			r.Delete("/{id}", products.Delete)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(apiLimiter)
			r.Get("/", categories.List)
			r.Get("/{id}", categories.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(authed, admin, apiLimiter)
			r.Post("/", categories.Create)
			r.Put("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authed, apiLimiter)
			r.Post("/", orders.Create)
			r.Get("/mine", orders.Mine)
			r.Post("/pay", orders.Pay)
			r.Get("/{id}", orders.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(authed, admin, apiLimiter)
			r.Get("/", orders.List)
			r.Get("/total-orders", orders.TotalOrders)
			r.Get("/total-sales", orders.TotalSales)
			r.Get("/total-sales-by-date", orders.SalesByDate)
			r.Put("/{id}/deliver", orders.Deliver)
		})
	})

	return r
}
