package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSpec = `
openapi: 3.0.3
info:
  title: Storefront API
  version: 1.0.0
paths:
  /users/auth:
    post:
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              required: [email, password]
              properties:
                email:
                  type: string
                password:
                  type: string
      responses:
        '200':
          description: OK
  /products:
    get:
      responses:
        '200':
          description: OK
`

func writeTestSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSpec), 0o600))
	return path
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestOpenAPIValidator(t *testing.T) {
	config := &OpenAPIValidatorConfig{
		Enabled:   true,
		SpecPath:  writeTestSpec(t),
		SkipPaths: []string{"/health", "/metrics"},
	}
	handler := OpenAPIValidator(config)(okHandler())

	t.Run("valid_request_passes", func(t *testing.T) {
		body := strings.NewReader(`{"email":"john@example.com","password":"password"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/auth", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing_required_field_is_rejected", func(t *testing.T) {
		body := strings.NewReader(`{"email":"john@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/auth", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation failed")
	})

	t.Run("unknown_path_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/not-in-spec", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("skip_paths_bypass_validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOpenAPIValidator_DisabledIsPassthrough(t *testing.T) {
	handler := OpenAPIValidator(&OpenAPIValidatorConfig{Enabled: false})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOpenAPIValidator_MissingSpecDegradesToNoop(t *testing.T) {
	config := &OpenAPIValidatorConfig{
		Enabled:  true,
		SpecPath: "does/not/exist.yaml",
	}
	handler := OpenAPIValidator(config)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
