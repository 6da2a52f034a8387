package demoserver

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"azushop-client/internal/domain"
	"azushop-client/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	store *Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(store *Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// ReviewRequest represents a product review submission
type ReviewRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// List returns a page of products, filtered by the keyword query param
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	result := h.store.ListProducts(r.URL.Query().Get("keyword"), page)
	writeJSON(w, http.StatusOK, result)
}

// ListAll returns the unpaginated catalog
func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.AllProducts())
}

// Get returns one product by id
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.store.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Create adds a product from a multipart form (admin)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		http.Error(w, `{"message":"Invalid multipart body"}`, http.StatusBadRequest)
		return
	}

	product, err := h.store.CreateProduct(form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// Update mutates a product from a multipart form (admin)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		http.Error(w, `{"message":"Invalid multipart body"}`, http.StatusBadRequest)
		return
	}

	product, err := h.store.UpdateProduct(chi.URLParam(r, "id"), form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Delete removes a product (admin)
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProduct(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product removed"})
}

// AddReview attaches a review from the authenticated user
func (h *ProductHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	authed, _ := middleware.GetUser(r.Context())

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	product, err := h.store.AddReview(chi.URLParam(r, "id"), authed.Username, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// Top returns the highest-rated products
func (h *ProductHandler) Top(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.TopProducts())
}

// New returns the most recently added products
func (h *ProductHandler) New(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.NewProducts())
}

// Filter returns products matching category and price constraints
func (h *ProductHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var filter domain.ProductFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.store.FilterProducts(filter))
}

// parseProductForm reads the multipart product form. The image part is
// optional; when present only a synthetic URL is recorded.
func parseProductForm(r *http.Request) (domain.Product, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return domain.Product{}, err
	}

	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	countInStock, _ := strconv.Atoi(r.FormValue("countInStock"))

	product := domain.Product{
		Name:         r.FormValue("name"),
		Price:        price,
		Brand:        r.FormValue("brand"),
		Category:     domain.Category{ID: r.FormValue("category")},
		CountInStock: countInStock,
		Description:  r.FormValue("description"),
	}

	if _, header, err := r.FormFile("image"); err == nil {
		product.Image = "/uploads/" + uuid.New().String() + filepath.Ext(header.Filename)
	}

	return product, nil
}
