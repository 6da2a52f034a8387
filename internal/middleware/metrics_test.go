package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics())
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/products/42", nil)
	rec := httptest.NewRecorder()

	// Must not panic and must pass the request through
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetrics_RecordsErrorStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics())
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"product not found"}`, http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
