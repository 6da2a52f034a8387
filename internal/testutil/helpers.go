// Package testutil provides shared helpers for integration-style
// package tests that need a storefront backend to talk to.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"azushop-client/internal/api"
	"azushop-client/internal/demoserver"
	"azushop-client/internal/domain"
	"azushop-client/internal/notify"
	"azushop-client/internal/session"
	"azushop-client/internal/storage"

	"github.com/stretchr/testify/require"
)

// StartDemoBackend runs an in-process demo backend and returns its base
// URL. Rate limiting is off so tests can hammer it.
func StartDemoBackend(t *testing.T) string {
	t.Helper()

	store, err := demoserver.NewStore()
	require.NoError(t, err)

	tokens := demoserver.NewTokens("test-secret", time.Hour)
	handler := demoserver.NewRouter(store, tokens, demoserver.RouterConfig{
		DisableRateLimit: true,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

// UnreachableBackend returns a base URL whose server has already been
// shut down, so every request fails at the dial.
func UnreachableBackend(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

// NewClientStack wires a client with an in-memory session store and a
// fresh notification bus against the given base URL.
func NewClientStack(t *testing.T, baseURL string) (*api.Client, domain.SessionStore, *notify.Bus) {
	t.Helper()

	sessions := session.NewStore(storage.NewMemoryStore(), 24*time.Hour)
	events := notify.NewBus()
	return api.New(baseURL, sessions, events), sessions, events
}
