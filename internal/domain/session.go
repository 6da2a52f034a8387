package domain

import (
	"errors"
	"time"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrSessionExpired = errors.New("session expired")
)

// Session holds the authenticated user's identity and bearer token.
// A session is valid only while all fields are present and ExpiresAt
// is in the future; partial state is treated as no session at all.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session is usable at the given instant.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.Token != "" && s.User.ID != "" && now.Before(s.ExpiresAt)
}

// SessionStore defines the single source of truth for the signed-in user.
type SessionStore interface {
	Set(user User, token string)
	Get() (*Session, bool)
	Clear()
	IsValid() bool
	Extend() bool
}
