// Package demo holds the hard-coded catalog served when the real
// backend is unreachable ("demo mode") and by the demo backend.
package demo

import (
	"strings"
	"time"

	"azushop-client/internal/domain"
)

// Products returns the demo catalog
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:           "1",
			Name:         "MacBook Pro 16-inch M3 Max",
			Price:        2399.99,
			Brand:        "Apple",
			Category:     domain.Category{ID: "laptops", Name: "Laptops"},
			Image:        "/placeholder.svg?height=300&width=300&text=MacBook+Pro",
			Rating:       4.8,
			NumReviews:   124,
			CountInStock: 15,
			Description:  "The MacBook Pro 16-inch with M3 Max chip delivers exceptional performance for professionals.",
		},
		{
			ID:           "2",
			Name:         "iPhone 15 Pro Max 256GB",
			Price:        1199.99,
			Brand:        "Apple",
			Category:     domain.Category{ID: "phones", Name: "Phones"},
			Image:        "/placeholder.svg?height=300&width=300&text=iPhone+15+Pro",
			Rating:       4.9,
			NumReviews:   89,
			CountInStock: 8,
			Description:  "The latest iPhone with advanced camera system and A17 Pro chip.",
		},
		{
			ID:           "3",
			Name:         "Canon EOS R5 Mirrorless Camera",
			Price:        3899.99,
			Brand:        "Canon",
			Category:     domain.Category{ID: "cameras", Name: "Cameras"},
			Image:        "/placeholder.svg?height=300&width=300&text=Canon+Camera",
			Rating:       4.7,
			NumReviews:   56,
			CountInStock: 0,
			Description:  "Professional mirrorless camera with 45MP full-frame sensor.",
		},
		{
			ID:           "4",
			Name:         "Sony WH-1000XM5 Wireless Headphones",
			Price:        349.99,
			Brand:        "Sony",
			Category:     domain.Category{ID: "audio", Name: "Audio"},
			Image:        "/placeholder.svg?height=300&width=300&text=Sony+Headphones",
			Rating:       4.6,
			NumReviews:   203,
			CountInStock: 25,
			Description:  "Industry-leading noise canceling with exceptional sound quality.",
		},
		{
			ID:           "5",
			Name:         "Dell XPS 13 Laptop",
			Price:        1299.99,
			Brand:        "Dell",
			Category:     domain.Category{ID: "laptops", Name: "Laptops"},
			Image:        "/placeholder.svg?height=300&width=300&text=Dell+XPS",
			Rating:       4.5,
			NumReviews:   78,
			CountInStock: 12,
			Description:  "Ultra-portable laptop with stunning InfinityEdge display.",
		},
		{
			ID:           "6",
			Name:         "Samsung Galaxy S24 Ultra",
			Price:        1299.99,
			Brand:        "Samsung",
			Category:     domain.Category{ID: "phones", Name: "Phones"},
			Image:        "/placeholder.svg?height=300&width=300&text=Galaxy+S24",
			Rating:       4.7,
			NumReviews:   156,
			CountInStock: 20,
			Description:  "Premium Android smartphone with S Pen and advanced cameras.",
		},
	}
}

// Categories returns the demo category list
func Categories() []domain.Category {
	return []domain.Category{
		{ID: "laptops", Name: "Laptops"},
		{ID: "phones", Name: "Phones"},
		{ID: "cameras", Name: "Cameras"},
		{ID: "audio", Name: "Audio"},
	}
}

// Users returns the demo user accounts
func Users() []domain.User {
	return []domain.User{
		{ID: "1", Username: "John Doe", Email: "john@example.com", IsAdmin: false},
		{ID: "2", Username: "Admin User", Email: "admin@azushop.com", IsAdmin: true},
	}
}

// Orders returns the demo order history
func Orders() []domain.Order {
	return []domain.Order{
		{
			ID: "order-1",
			OrderItems: []domain.OrderItem{
				{Product: "1", Name: "MacBook Pro 16-inch M3 Max", Price: 2399.99, Qty: 1},
			},
			TotalPrice:  2399.99,
			IsPaid:      true,
			IsDelivered: false,
			CreatedAt:   time.Now(),
		},
	}
}

// FindProduct looks a product up by id
func FindProduct(id string) (*domain.Product, bool) {
	for _, product := range Products() {
		if product.ID == id {
			return &product, true
		}
	}
	return nil, false
}

// FilterByKeyword returns products whose names contain the keyword,
// case-insensitively. An empty keyword matches everything.
func FilterByKeyword(keyword string) []domain.Product {
	products := Products()
	if keyword == "" {
		return products
	}

	matched := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), strings.ToLower(keyword)) {
			matched = append(matched, product)
		}
	}
	return matched
}
