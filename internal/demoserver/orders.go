package demoserver

import (
	"encoding/json"
	"net/http"

	"azushop-client/internal/domain"
	"azushop-client/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order and sales endpoints
type OrderHandler struct {
	store *Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store *Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// CreateOrderRequest represents order placement
type CreateOrderRequest struct {
	OrderItems      []domain.OrderItem     `json:"orderItems"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// Create places an order for the authenticated user
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	authed, _ := middleware.GetUser(r.Context())

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	order, err := h.store.CreateOrder(authed, req.OrderItems, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// List returns every order (admin)
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListOrders())
}

// Mine returns the authenticated user's orders
func (h *OrderHandler) Mine(w http.ResponseWriter, r *http.Request) {
	authed, _ := middleware.GetUser(r.Context())
	writeJSON(w, http.StatusOK, h.store.OrdersByUser(authed.ID))
}

// Get returns one order by id
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.store.GetOrder(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Pay marks an order as paid and hands back a synthetic payment
// authorization URL in place of a real provider redirect.
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	order, err := h.store.PayOrder(req.Order)
	if err != nil {
		writeError(w, err)
		return
	}

	var result domain.PaymentResult
	result.Transaction.Data.AuthorizationURL = req.CallbackURL
	result.Order = order
	result.Message = "Payment recorded"
	writeJSON(w, http.StatusOK, result)
}

// Deliver marks an order as delivered (admin)
func (h *OrderHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	order, err := h.store.DeliverOrder(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// TotalOrders returns the order count aggregate (admin)
func (h *OrderHandler) TotalOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.TotalOrders())
}

// TotalSales returns the sales total aggregate (admin)
func (h *OrderHandler) TotalSales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.TotalSales())
}

// SalesByDate returns the daily sales aggregate (admin)
func (h *OrderHandler) SalesByDate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.SalesByDate())
}
