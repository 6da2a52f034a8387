// Package state holds the in-memory UI state containers: the shopping
// cart and the favorites list. Both live for the browsing session only;
// no persistence is promised.
package state

import "sync"

// CartItem is one line in the cart, keyed by product id
type CartItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"qty"`
	Image     string  `json:"image"`
}

// Cart is a mutex-guarded cart collection. Items are unique per product
// id; display order is insertion order.
type Cart struct {
	mu    sync.Mutex
	order []string
	items map[string]*CartItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{
		items: make(map[string]*CartItem),
	}
}

// Add inserts an item or, if the product is already in the cart, adds
// the quantities together. Non-positive quantities are treated as 1.
func (c *Cart) Add(item CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.items[item.ProductID]; ok {
		existing.Quantity += item.Quantity
		return
	}

	copied := item
	c.items[item.ProductID] = &copied
	c.order = append(c.order, item.ProductID)
}

// UpdateQuantity sets the quantity for a product. A quantity of zero or
// less removes the entry entirely.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[productID]
	if !ok {
		return
	}

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	item.Quantity = quantity
}

// Remove deletes a product from the cart. Unknown ids are ignored.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*CartItem)
	c.order = nil
}

// Items returns the cart lines in insertion order
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

// Total returns the cart value (unit price times quantity, summed)
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the number of units in the cart
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) removeLocked(productID string) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
