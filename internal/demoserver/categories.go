package demoserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	store *Store
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(store *Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// CategoryRequest represents a category create or rename
type CategoryRequest struct {
	Name string `json:"name"`
}

// List returns all categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListCategories())
}

// Get returns one category by id
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.store.GetCategory(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Create adds a category (admin)
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	category, err := h.store.CreateCategory(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// Update renames a category (admin)
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	category, err := h.store.UpdateCategory(chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Delete removes a category (admin)
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCategory(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category removed"})
}
