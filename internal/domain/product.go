package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Category is a product grouping
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Product represents a catalog entry
type Product struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Brand        string   `json:"brand"`
	Category     Category `json:"category"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	NumReviews   int      `json:"numReviews"`
	CountInStock int      `json:"countInStock"`
	Description  string   `json:"description"`
	Reviews      []Review `json:"reviews,omitempty"`
}

// Review is a customer rating attached to a product
type Review struct {
	User    string  `json:"user,omitempty"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// ProductPage is the paginated product listing response
type ProductPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
	HasMore  bool      `json:"hasMore"`
}

// ProductFilter selects products by category ids and a price range
type ProductFilter struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}
