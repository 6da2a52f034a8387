package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderItem is one purchased line within an order
type OrderItem struct {
	Product string  `json:"product"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Qty     int     `json:"qty"`
	Image   string  `json:"image,omitempty"`
}

// ShippingAddress is the delivery destination for an order
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order represents a placed order
type Order struct {
	ID              string          `json:"_id"`
	User            *User           `json:"user,omitempty"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      float64         `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	IsDelivered     bool            `json:"isDelivered"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// OrderCount is the admin dashboard order total
type OrderCount struct {
	TotalOrders int `json:"totalOrders"`
}

// SalesTotal is the admin dashboard sales total
type SalesTotal struct {
	TotalSales float64 `json:"totalSales"`
}

// DailySales is one row of the sales-by-date aggregate
type DailySales struct {
	Date       string  `json:"_id"`
	TotalSales float64 `json:"totalSales"`
}

// PaymentRequest initiates payment for an order
type PaymentRequest struct {
	CallbackURL string `json:"callback_url"`
	Order       string `json:"order"`
}

// PaymentResult is the payment provider handoff returned by the backend
type PaymentResult struct {
	Transaction struct {
		Data struct {
			AuthorizationURL string `json:"authorization_url"`
		} `json:"data"`
	} `json:"transaction"`
	Order   *Order `json:"order,omitempty"`
	Message string `json:"message,omitempty"`
}
