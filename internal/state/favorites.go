package state

import "sync"

// FavoriteItem is a favorited product. Price metadata is carried for
// display and never recomputed here.
type FavoriteItem struct {
	ProductID     string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Discount      float64 `json:"discount,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating,omitempty"`
}

// Favorites is a mutex-guarded favorites collection, unique per product
// id with insertion-order display.
type Favorites struct {
	mu    sync.Mutex
	order []string
	items map[string]FavoriteItem
}

// NewFavorites creates an empty favorites list
func NewFavorites() *Favorites {
	return &Favorites{
		items: make(map[string]FavoriteItem),
	}
}

// Add favorites a product. Adding an already-favorited product is a
// no-op; the stored item is not replaced.
func (f *Favorites) Add(item FavoriteItem) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[item.ProductID]; ok {
		return
	}
	f.items[item.ProductID] = item
	f.order = append(f.order, item.ProductID)
}

// Remove unfavorites a product. Unknown ids are ignored.
func (f *Favorites) Remove(productID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[productID]; !ok {
		return
	}
	delete(f.items, productID)
	for i, id := range f.order {
		if id == productID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether a product is favorited
func (f *Favorites) Contains(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.items[productID]
	return ok
}

// Clear empties the favorites list
func (f *Favorites) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = make(map[string]FavoriteItem)
	f.order = nil
}

// Items returns the favorites in insertion order
func (f *Favorites) Items() []FavoriteItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]FavoriteItem, 0, len(f.order))
	for _, id := range f.order {
		items = append(items, f.items[id])
	}
	return items
}
