// Package storage provides the durable key-value medium backing the
// session store, the Go analogue of browser localStorage.
package storage

// Store defines how client-durable values are stored and retrieved.
// Multi-key writes and deletes are applied as a single atomic set so
// readers never observe a partially written session.
type Store interface {
	Get(key string) (string, bool, error)
	SetMany(values map[string]string) error
	DeleteMany(keys ...string) error
}
