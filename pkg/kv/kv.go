// Package kv provides the durable string-keyed store the rest of the
// application persists into. Values are opaque strings (the callers store
// JSON or flag-like values).
package kv

// Store is a durable key-value store. Get reports whether the key was
// present; a missing key is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
