package api

import (
	"context"
	"encoding/json"
	"fmt"

	"azushop-client/internal/domain"
)

// OrdersAPI groups the order and sales operations
type OrdersAPI struct {
	client *Client
}

// Orders returns the order API surface
func (c *Client) Orders() *OrdersAPI {
	return &OrdersAPI{client: c}
}

// CreateOrderInput is the payload for order placement
type CreateOrderInput struct {
	OrderItems      []domain.OrderItem     `json:"orderItems"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// Create places an order
func (a *OrdersAPI) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	payload, err := a.client.Call(ctx, "createOrder", &Request{Body: input})
	if err != nil {
		return nil, err
	}
	return decodeOrder(payload)
}

// List returns all orders (admin)
func (a *OrdersAPI) List(ctx context.Context) ([]domain.Order, error) {
	payload, err := a.client.Call(ctx, "listOrders", nil)
	if err != nil {
		return nil, err
	}
	return decodeOrders(payload)
}

// Mine returns the signed-in user's orders
func (a *OrdersAPI) Mine(ctx context.Context) ([]domain.Order, error) {
	payload, err := a.client.Call(ctx, "myOrders", nil)
	if err != nil {
		return nil, err
	}
	return decodeOrders(payload)
}

// Get returns one order by id
func (a *OrdersAPI) Get(ctx context.Context, id string) (*domain.Order, error) {
	payload, err := a.client.Call(ctx, "getOrder", &Request{PathArgs: []any{id}})
	if err != nil {
		return nil, err
	}
	return decodeOrder(payload)
}

// Pay initiates payment for an order
func (a *OrdersAPI) Pay(ctx context.Context, input domain.PaymentRequest) (*domain.PaymentResult, error) {
	payload, err := a.client.Call(ctx, "payOrder", &Request{Body: input})
	if err != nil {
		return nil, err
	}

	var result domain.PaymentResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode payment result: %w", err)
	}
	return &result, nil
}

// MarkDelivered flags an order as delivered (admin)
func (a *OrdersAPI) MarkDelivered(ctx context.Context, id string) (*domain.Order, error) {
	payload, err := a.client.Call(ctx, "deliverOrder", &Request{PathArgs: []any{id}})
	if err != nil {
		return nil, err
	}
	return decodeOrder(payload)
}

// TotalOrders returns the order count aggregate (admin)
func (a *OrdersAPI) TotalOrders(ctx context.Context) (*domain.OrderCount, error) {
	payload, err := a.client.Call(ctx, "totalOrders", nil)
	if err != nil {
		return nil, err
	}

	var count domain.OrderCount
	if err := json.Unmarshal(payload, &count); err != nil {
		return nil, fmt.Errorf("failed to decode order count: %w", err)
	}
	return &count, nil
}

// TotalSales returns the sales total aggregate (admin)
func (a *OrdersAPI) TotalSales(ctx context.Context) (*domain.SalesTotal, error) {
	payload, err := a.client.Call(ctx, "totalSales", nil)
	if err != nil {
		return nil, err
	}

	var total domain.SalesTotal
	if err := json.Unmarshal(payload, &total); err != nil {
		return nil, fmt.Errorf("failed to decode sales total: %w", err)
	}
	return &total, nil
}

// SalesByDate returns the daily sales aggregate (admin)
func (a *OrdersAPI) SalesByDate(ctx context.Context) ([]domain.DailySales, error) {
	payload, err := a.client.Call(ctx, "salesByDate", nil)
	if err != nil {
		return nil, err
	}

	var rows []domain.DailySales
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode daily sales: %w", err)
	}
	return rows, nil
}

func decodeOrder(payload json.RawMessage) (*domain.Order, error) {
	var order domain.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	return &order, nil
}

func decodeOrders(payload json.RawMessage) ([]domain.Order, error) {
	var orders []domain.Order
	if err := json.Unmarshal(payload, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode order list: %w", err)
	}
	return orders, nil
}
