// Package notify provides the process-wide broadcast channel the API
// client publishes auth lifecycle events on. The core only publishes;
// UI observers subscribe and re-read session state on any event.
package notify

import (
	"sync"

	"azushop-client/internal/domain"
	"azushop-client/internal/observability"
)

// EventType identifies an auth lifecycle event
type EventType string

const (
	EventLoginSuccess EventType = "login-success"
	EventLogout       EventType = "logout"
	EventAuthError    EventType = "auth-error"
)

// Event is a fire-and-forget broadcast notification. User is set only
// for login-success; observers must not treat it as current state.
type Event struct {
	Type EventType
	User *domain.User
}

// Handler receives published events
type Handler func(Event)

// Publisher is the write side of the bus, the only part the API client needs
type Publisher interface {
	Publish(event Event)
}

// Bus is a synchronous in-process broadcast bus. Handlers run on the
// publisher's goroutine, immediately after the triggering state change.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

// NewBus creates an empty Bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[int]Handler),
	}
}

// Subscribe registers a handler and returns an id for Unsubscribe
func (b *Bus) Subscribe(handler Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[b.nextID] = handler
	return b.nextID
}

// Unsubscribe removes a handler. Unknown ids are ignored.
func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, id)
}

// Publish delivers the event to every subscribed handler. Delivery is
// best-effort: no ordering is promised across concurrent publishers.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.handlers))
	for _, handler := range b.handlers {
		handlers = append(handlers, handler)
	}
	b.mu.Unlock()

	observability.Debug("publishing event", "type", string(event.Type), "subscribers", len(handlers))

	for _, handler := range handlers {
		handler(event)
	}
}
