// Package session implements the client-side session store: the single
// source of truth for whether a user is signed in, and who.
package session

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"azushop-client/internal/domain"
	"azushop-client/internal/observability"
	"azushop-client/internal/storage"
)

// Storage keys written and cleared together as one logical record.
// isAdmin is denormalized so UI code can branch without decoding userData.
const (
	keyToken   = "userToken"
	keyUser    = "userData"
	keyExpiry  = "sessionExpiry"
	keyIsAdmin = "isAdmin"
)

// Store persists the authenticated user's identity and token with a
// sliding expiry window. Every operation is a single atomic step under
// the store mutex, so no caller observes a half-cleared session.
//
// Storage failures are absorbed: operations degrade to "no session"
// and never propagate an error to the caller.
type Store struct {
	mu      sync.Mutex
	backend storage.Store
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a session store over the given storage backend.
// A non-positive ttl falls back to 24 hours.
func NewStore(backend storage.Store, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		backend: backend,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Set writes the session atomically with expiry = now + TTL.
// Write failures are logged, never raised.
func (s *Store) Set(user domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userData, err := json.Marshal(user)
	if err != nil {
		observability.Error("failed to encode session user", "error", err.Error())
		observability.SessionOperationsTotal.WithLabelValues("set", "error").Inc()
		return
	}

	expiry := s.now().Add(s.ttl)
	err = s.backend.SetMany(map[string]string{
		keyToken:   token,
		keyUser:    string(userData),
		keyExpiry:  strconv.FormatInt(expiry.Unix(), 10),
		keyIsAdmin: strconv.FormatBool(user.IsAdmin),
	})
	if err != nil {
		observability.Error("failed to persist session", "error", err.Error())
		observability.SessionOperationsTotal.WithLabelValues("set", "error").Inc()
		return
	}

	observability.SessionOperationsTotal.WithLabelValues("set", "ok").Inc()
}

// Get returns the current session, clearing it first if it has expired
// or if the stored record is partial or corrupt.
func (s *Store) Get() (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked()
}

// Clear removes the session. Clearing an absent session is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	observability.SessionOperationsTotal.WithLabelValues("clear", "ok").Inc()
}

// IsValid reports whether a usable session exists right now.
func (s *Store) IsValid() bool {
	_, ok := s.Get()
	return ok
}

// Extend pushes the expiry out to now + TTL if a session currently
// exists, implementing rolling expiry. Returns whether an extension
// occurred; with no session nothing is written.
func (s *Store) Extend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.getLocked(); !ok {
		observability.SessionOperationsTotal.WithLabelValues("extend", "no_session").Inc()
		return false
	}

	expiry := s.now().Add(s.ttl)
	err := s.backend.SetMany(map[string]string{
		keyExpiry: strconv.FormatInt(expiry.Unix(), 10),
	})
	if err != nil {
		observability.Error("failed to extend session", "error", err.Error())
		observability.SessionOperationsTotal.WithLabelValues("extend", "error").Inc()
		return false
	}

	observability.SessionOperationsTotal.WithLabelValues("extend", "ok").Inc()
	return true
}

func (s *Store) getLocked() (*domain.Session, bool) {
	token, okToken, err := s.backend.Get(keyToken)
	if err != nil {
		observability.Warn("session storage unavailable", "error", err.Error())
		observability.SessionOperationsTotal.WithLabelValues("get", "storage_error").Inc()
		return nil, false
	}
	userData, okUser, _ := s.backend.Get(keyUser)
	expiryValue, okExpiry, _ := s.backend.Get(keyExpiry)

	// Partial presence is treated as absent
	if !okToken || !okUser || !okExpiry {
		observability.SessionOperationsTotal.WithLabelValues("get", "no_session").Inc()
		return nil, false
	}

	expiryUnix, err := strconv.ParseInt(expiryValue, 10, 64)
	if err != nil {
		observability.Warn("corrupt session expiry, clearing", "value", expiryValue)
		s.clearLocked()
		observability.SessionOperationsTotal.WithLabelValues("get", "corrupt").Inc()
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		observability.Warn("corrupt session user data, clearing", "error", err.Error())
		s.clearLocked()
		observability.SessionOperationsTotal.WithLabelValues("get", "corrupt").Inc()
		return nil, false
	}

	expiry := time.Unix(expiryUnix, 0)
	if !s.now().Before(expiry) {
		s.clearLocked()
		observability.SessionsExpiredTotal.Inc()
		observability.SessionOperationsTotal.WithLabelValues("get", "expired").Inc()
		return nil, false
	}

	observability.SessionOperationsTotal.WithLabelValues("get", "ok").Inc()
	return &domain.Session{
		Token:     token,
		User:      user,
		ExpiresAt: expiry,
	}, true
}

func (s *Store) clearLocked() {
	if err := s.backend.DeleteMany(keyToken, keyUser, keyExpiry, keyIsAdmin); err != nil {
		observability.Error("failed to clear session", "error", err.Error())
	}
}
