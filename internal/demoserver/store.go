// Package demoserver is a self-contained storefront backend used for
// local development and demos. It serves the demo catalog from memory
// over the same REST surface the real backend exposes.
package demoserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"azushop-client/internal/demo"
	"azushop-client/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const productPageSize = 6

type userRecord struct {
	user         domain.User
	passwordHash string
}

// Store is the in-memory state behind the demo server. All state is
// seeded from the demo catalog and lost on restart.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*userRecord
	products   map[string]*domain.Product
	productIDs []string
	categories map[string]*domain.Category
	orders     map[string]*domain.Order
	orderIDs   []string
	now        func() time.Time
}

// NewStore creates a store seeded with the demo catalog. The demo
// accounts get bcrypt hashes of their well-known passwords.
func NewStore() (*Store, error) {
	s := &Store{
		users:      make(map[string]*userRecord),
		products:   make(map[string]*domain.Product),
		categories: make(map[string]*domain.Category),
		orders:     make(map[string]*domain.Order),
		now:        time.Now,
	}

	passwords := map[string]string{
		"john@example.com":  "password",
		"admin@azushop.com": "admin123",
	}
	for _, user := range demo.Users() {
		hash, err := bcrypt.GenerateFromPassword([]byte(passwords[user.Email]), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.users[user.ID] = &userRecord{user: user, passwordHash: string(hash)}
	}

	for _, product := range demo.Products() {
		copied := product
		s.products[product.ID] = &copied
		s.productIDs = append(s.productIDs, product.ID)
	}

	for _, category := range demo.Categories() {
		copied := category
		s.categories[category.ID] = &copied
	}

	for _, order := range demo.Orders() {
		copied := order
		s.orders[order.ID] = &copied
		s.orderIDs = append(s.orderIDs, order.ID)
	}

	return s, nil
}

// Authenticate checks an email/password pair and returns the user
func (s *Store) Authenticate(email, password string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.findByEmailLocked(email)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.passwordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := record.user
	return &user, nil
}

// CreateUser registers a new account
func (s *Store) CreateUser(username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || len(password) < 6 {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findByEmailLocked(email); ok {
		return nil, domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
	}
	s.users[user.ID] = &userRecord{user: user, passwordHash: string(hash)}

	return &user, nil
}

// GetUser returns a user by id
func (s *Store) GetUser(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := record.user
	return &user, nil
}

// ListUsers returns all accounts
func (s *Store) ListUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, record := range s.users {
		users = append(users, record.user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// UpdateUser applies a partial update to an account. Nil fields are
// left unchanged. A non-empty password is re-hashed.
func (s *Store) UpdateUser(id string, username, email, password *string, isAdmin *bool) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	if username != nil && *username != "" {
		record.user.Username = *username
	}
	if email != nil && *email != "" {
		if other, ok := s.findByEmailLocked(*email); ok && other.user.ID != id {
			return nil, domain.ErrEmailExists
		}
		record.user.Email = *email
	}
	if password != nil && *password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		record.passwordHash = string(hash)
	}
	if isAdmin != nil {
		record.user.IsAdmin = *isAdmin
	}

	user := record.user
	return &user, nil
}

// SetProfilePicture stores the uploaded picture reference
func (s *Store) SetProfilePicture(id, picture string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	record.user.ProfilePicture = picture

	user := record.user
	return &user, nil
}

// DeleteUser removes an account
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *Store) findByEmailLocked(email string) (*userRecord, bool) {
	for _, record := range s.users {
		if strings.EqualFold(record.user.Email, email) {
			return record, true
		}
	}
	return nil, false
}

// ListProducts returns one page of the catalog, optionally filtered by
// a keyword match on the product name.
func (s *Store) ListProducts(keyword string, page int) domain.ProductPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		product := s.products[id]
		if keyword != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(keyword)) {
			continue
		}
		matched = append(matched, *product)
	}

	if page < 1 {
		page = 1
	}
	pages := (len(matched) + productPageSize - 1) / productPageSize
	if pages == 0 {
		pages = 1
	}

	start := (page - 1) * productPageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + productPageSize
	if end > len(matched) {
		end = len(matched)
	}

	return domain.ProductPage{
		Products: matched[start:end],
		Page:     page,
		Pages:    pages,
		HasMore:  page < pages,
	}
}

// AllProducts returns the full catalog without pagination
func (s *Store) AllProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		products = append(products, *s.products[id])
	}
	return products
}

// GetProduct returns a product by id
func (s *Store) GetProduct(id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

// CreateProduct adds a product to the catalog
func (s *Store) CreateProduct(product domain.Product) (*domain.Product, error) {
	if product.Name == "" || product.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if category, ok := s.categories[product.Category.ID]; ok {
		product.Category = *category
	}
	product.ID = uuid.New().String()

	copied := product
	s.products[product.ID] = &copied
	s.productIDs = append(s.productIDs, product.ID)

	return &product, nil
}

// UpdateProduct replaces a product's editable fields
func (s *Store) UpdateProduct(id string, update domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	if update.Name != "" {
		product.Name = update.Name
	}
	if update.Price > 0 {
		product.Price = update.Price
	}
	if update.Brand != "" {
		product.Brand = update.Brand
	}
	if update.Description != "" {
		product.Description = update.Description
	}
	if update.Image != "" {
		product.Image = update.Image
	}
	if update.CountInStock >= 0 {
		product.CountInStock = update.CountInStock
	}
	if update.Category.ID != "" {
		if category, ok := s.categories[update.Category.ID]; ok {
			product.Category = *category
		}
	}

	copied := *product
	return &copied, nil
}

// DeleteProduct removes a product from the catalog
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, id)
	for i, pid := range s.productIDs {
		if pid == id {
			s.productIDs = append(s.productIDs[:i], s.productIDs[i+1:]...)
			break
		}
	}
	return nil
}

// AddReview appends a review and recomputes the product rating
func (s *Store) AddReview(productID, user string, rating float64, comment string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	product.Reviews = append(product.Reviews, domain.Review{
		User:    user,
		Rating:  rating,
		Comment: comment,
	})
	product.NumReviews = len(product.Reviews)

	var sum float64
	for _, review := range product.Reviews {
		sum += review.Rating
	}
	product.Rating = sum / float64(len(product.Reviews))

	copied := *product
	return &copied, nil
}

// TopProducts returns the four highest-rated products
func (s *Store) TopProducts() []domain.Product {
	products := s.AllProducts()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rating > products[j].Rating
	})
	if len(products) > 4 {
		products = products[:4]
	}
	return products
}

// NewProducts returns the five most recently added products
func (s *Store) NewProducts() []domain.Product {
	products := s.AllProducts()
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
	if len(products) > 5 {
		products = products[:5]
	}
	return products
}

// FilterProducts selects products by category ids and a price range
func (s *Store) FilterProducts(filter domain.ProductFilter) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		product := s.products[id]

		if len(filter.Checked) > 0 && !contains(filter.Checked, product.Category.ID) {
			continue
		}
		if len(filter.Radio) >= 2 {
			if product.Price < filter.Radio[0] || product.Price > filter.Radio[1] {
				continue
			}
		}
		matched = append(matched, *product)
	}
	return matched
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// ListCategories returns all categories
func (s *Store) ListCategories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]domain.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, *category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories
}

// GetCategory returns a category by id
func (s *Store) GetCategory(id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

// CreateCategory adds a category
func (s *Store) CreateCategory(name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category := domain.Category{ID: uuid.New().String(), Name: name}
	s.categories[category.ID] = &category

	copied := category
	return &copied, nil
}

// UpdateCategory renames a category
func (s *Store) UpdateCategory(id, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	category.Name = name

	copied := *category
	return &copied, nil
}

// DeleteCategory removes a category
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(s.categories, id)
	return nil
}

// CreateOrder places an order for a user
func (s *Store) CreateOrder(user *domain.User, items []domain.OrderItem, shipping domain.ShippingAddress, paymentMethod string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}

	order := domain.Order{
		ID:              uuid.New().String(),
		User:            user,
		OrderItems:      items,
		ShippingAddress: shipping,
		PaymentMethod:   paymentMethod,
		TotalPrice:      total,
		CreatedAt:       s.now(),
	}
	copied := order
	s.orders[order.ID] = &copied
	s.orderIDs = append(s.orderIDs, order.ID)

	return &order, nil
}

// ListOrders returns every order
func (s *Store) ListOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		orders = append(orders, *s.orders[id])
	}
	return orders
}

// OrdersByUser returns the orders placed by one user
func (s *Store) OrdersByUser(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0)
	for _, id := range s.orderIDs {
		order := s.orders[id]
		if order.User != nil && order.User.ID == userID {
			orders = append(orders, *order)
		}
	}
	return orders
}

// GetOrder returns an order by id
func (s *Store) GetOrder(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

// PayOrder marks an order as paid
func (s *Store) PayOrder(id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order.IsPaid = true

	copied := *order
	return &copied, nil
}

// DeliverOrder marks an order as delivered
func (s *Store) DeliverOrder(id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order.IsDelivered = true

	copied := *order
	return &copied, nil
}

// TotalOrders returns the order count for the admin dashboard
func (s *Store) TotalOrders() domain.OrderCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.OrderCount{TotalOrders: len(s.orderIDs)}
}

// TotalSales sums the value of paid orders
func (s *Store) TotalSales() domain.SalesTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, order := range s.orders {
		if order.IsPaid {
			total += order.TotalPrice
		}
	}
	return domain.SalesTotal{TotalSales: total}
}

// SalesByDate groups paid order totals by calendar day
func (s *Store) SalesByDate() []domain.DailySales {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDate := make(map[string]float64)
	for _, order := range s.orders {
		if order.IsPaid {
			byDate[order.CreatedAt.Format("2006-01-02")] += order.TotalPrice
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	sales := make([]domain.DailySales, 0, len(dates))
	for _, date := range dates {
		sales = append(sales, domain.DailySales{Date: date, TotalSales: byDate[date]})
	}
	return sales
}
