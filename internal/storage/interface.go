package storage

import "errors"

// ErrNotFound is returned by Get when a key has never been written.
// Callers fall back to that key's documented default.
var ErrNotFound = errors.New("key not found")

// Provider is the durable key-value contract. Each top-level collection and
// the user profile persists under its own named key; values are the
// collection's serialized text, parsed back verbatim on load.
//
// Providers are not safe for concurrent use by multiple goroutines or
// processes; concurrent writers are last-writer-wins with no coordination.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Key-value access
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error

	// Utils
	Path() string
}
