package storage

import "errors"

// ErrKeyNotFound is returned when a requested key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Backend is a keyed byte-payload store. The record store, approval history
// and audit log all persist through this interface, so the same code runs
// against an in-memory map in tests, a JSON file directory in development
// and Postgres in production.
type Backend interface {
	// Get returns the payload stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set stores payload under key, replacing any previous value.
	Set(key string, payload []byte) error
}
