// Package storefront is the top-level facade an application embeds: it
// owns the API client, the persisted session, the notification bus and
// the in-memory cart and favorites, and falls back to the bundled demo
// catalog when no backend is reachable.
package storefront

import (
	"context"
	"sort"
	"sync"

	"azushop-client/internal/api"
	"azushop-client/internal/config"
	"azushop-client/internal/demo"
	"azushop-client/internal/domain"
	"azushop-client/internal/notify"
	"azushop-client/internal/observability"
	"azushop-client/internal/session"
	"azushop-client/internal/state"
	"azushop-client/internal/storage"

	"github.com/google/uuid"
)

// demoPasswords are the credentials the demo accounts accept when the
// backend is unreachable.
var demoPasswords = map[string]string{
	"john@example.com":  "password",
	"admin@azushop.com": "admin123",
}

// Storefront bundles the client-side storefront state
type Storefront struct {
	client    *api.Client
	sessions  domain.SessionStore
	events    *notify.Bus
	Cart      *state.Cart
	Favorites *state.Favorites

	mu            sync.Mutex
	usingDemoData bool
}

// New assembles a storefront around an already-wired client
func New(client *api.Client, sessions domain.SessionStore, events *notify.Bus) *Storefront {
	return &Storefront{
		client:    client,
		sessions:  sessions,
		events:    events,
		Cart:      state.NewCart(),
		Favorites: state.NewFavorites(),
	}
}

// NewFromConfig wires a storefront from configuration: a file-backed
// session store, a notification bus and the resilient API client.
func NewFromConfig(cfg *config.Config) *Storefront {
	backend := storage.NewFileStore(cfg.SessionFile)
	sessions := session.NewStore(backend, cfg.SessionTTL)
	events := notify.NewBus()
	client := api.New(cfg.APIBaseURL, sessions, events,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithHealthTimeout(cfg.HealthTimeout),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return New(client, sessions, events)
}

// Client exposes the underlying API client for calls the facade does
// not wrap.
func (s *Storefront) Client() *api.Client { return s.client }

// Sessions exposes the session store
func (s *Storefront) Sessions() domain.SessionStore { return s.sessions }

// Subscribe registers a handler for auth lifecycle events
func (s *Storefront) Subscribe(handler notify.Handler) int {
	return s.events.Subscribe(handler)
}

// Unsubscribe removes a previously registered handler
func (s *Storefront) Unsubscribe(id int) {
	s.events.Unsubscribe(id)
}

// UsingDemoData reports whether any catalog call has fallen back to the
// bundled demo data since the last successful backend call.
func (s *Storefront) UsingDemoData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usingDemoData
}

func (s *Storefront) setDemoMode(operation string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if active && !s.usingDemoData {
		observability.DemoModeActivationsTotal.WithLabelValues(operation).Inc()
	}
	s.usingDemoData = active
}

// Login authenticates against the backend. When every endpoint is
// unreachable the demo accounts still work locally so the app stays
// usable offline.
func (s *Storefront) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.client.Users().Login(ctx, api.LoginInput{Email: email, Password: password})
	if err == nil {
		s.setDemoMode("login", false)
		return user, nil
	}
	if !api.IsAllEndpointsFailed(err) {
		return nil, err
	}

	if demoPasswords[email] != password {
		return nil, err
	}
	for _, candidate := range demo.Users() {
		if candidate.Email == email {
			demoUser := candidate
			s.sessions.Set(demoUser, "demo-token-"+uuid.New().String())
			s.events.Publish(notify.Event{Type: notify.EventLoginSuccess, User: &demoUser})
			s.setDemoMode("login", true)
			return &demoUser, nil
		}
	}
	return nil, err
}

// Register creates an account and establishes the session
func (s *Storefront) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.client.Users().Register(ctx, api.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Logout clears the session and the per-user state. The cart and
// favorites belong to the signed-in user, so they go too.
func (s *Storefront) Logout(ctx context.Context) {
	s.client.Users().Logout(ctx)
	s.Cart.Clear()
	s.Favorites.Clear()
}

// Products returns a catalog page, serving demo data when the backend
// is unreachable.
func (s *Storefront) Products(ctx context.Context, keyword string) (*domain.ProductPage, error) {
	page, err := s.client.Products().List(ctx, keyword)
	if err == nil {
		s.setDemoMode("getProducts", false)
		return page, nil
	}
	if !api.IsAllEndpointsFailed(err) {
		return nil, err
	}

	s.setDemoMode("getProducts", true)
	matched := demo.FilterByKeyword(keyword)
	return &domain.ProductPage{Products: matched, Page: 1, Pages: 1}, nil
}

// Product returns one product, serving demo data when the backend is
// unreachable.
func (s *Storefront) Product(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.client.Products().Get(ctx, id)
	if err == nil {
		s.setDemoMode("getProduct", false)
		return product, nil
	}
	if !api.IsAllEndpointsFailed(err) {
		return nil, err
	}

	if fallback, ok := demo.FindProduct(id); ok {
		s.setDemoMode("getProduct", true)
		return fallback, nil
	}
	return nil, err
}

// TopProducts returns the highest-rated products with demo fallback
func (s *Storefront) TopProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.client.Products().Top(ctx)
	if err == nil {
		s.setDemoMode("getTopProducts", false)
		return products, nil
	}
	if !api.IsAllEndpointsFailed(err) {
		return nil, err
	}

	s.setDemoMode("getTopProducts", true)
	fallback := demo.Products()
	sort.SliceStable(fallback, func(i, j int) bool {
		return fallback[i].Rating > fallback[j].Rating
	})
	if len(fallback) > 4 {
		fallback = fallback[:4]
	}
	return fallback, nil
}

// Categories returns the category list with demo fallback
func (s *Storefront) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.client.Categories().List(ctx)
	if err == nil {
		s.setDemoMode("getCategories", false)
		return categories, nil
	}
	if !api.IsAllEndpointsFailed(err) {
		return nil, err
	}

	s.setDemoMode("getCategories", true)
	return demo.Categories(), nil
}

// Checkout places an order from the cart contents and clears the cart
// on success. Checkout requires a live backend; there is no demo
// fallback for placing orders.
func (s *Storefront) Checkout(ctx context.Context, shipping domain.ShippingAddress, paymentMethod string) (*domain.Order, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			Product: item.ProductID,
			Name:    item.Name,
			Price:   item.Price,
			Qty:     item.Quantity,
			Image:   item.Image,
		})
	}

	order, err := s.client.Orders().Create(ctx, api.CreateOrderInput{
		OrderItems:      orderItems,
		ShippingAddress: shipping,
		PaymentMethod:   paymentMethod,
	})
	if err != nil {
		return nil, err
	}

	s.Cart.Clear()
	return order, nil
}
