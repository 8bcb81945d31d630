package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the minimal persistence surface the profile layer needs.
// Implementations must be safe for concurrent use.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
