package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"azushop-client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticVerifier struct {
	token string
	user  *domain.User
}

func (v *staticVerifier) Verify(token string) (*domain.User, error) {
	if token != v.token {
		return nil, errors.New("invalid token")
	}
	return v.user, nil
}

func TestAuth(t *testing.T) {
	verifier := &staticVerifier{
		token: "good-token",
		user:  &domain.User{ID: "1", Username: "John Doe", Email: "john@example.com"},
	}

	var seenUser *domain.User
	handler := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid_token_passes_user_through", func(t *testing.T) {
		seenUser = nil
		req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seenUser)
		assert.Equal(t, "1", seenUser.ID)
	})

	t.Run("missing_header_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong_scheme_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		req.Header.Set("Authorization", "Basic good-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown_token_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("admin_is_allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(WithUser(req.Context(), &domain.User{ID: "2", IsAdmin: true}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular_user_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(WithUser(req.Context(), &domain.User{ID: "1"}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("anonymous_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
