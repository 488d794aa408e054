// Package storage defines the persistence contract shared by the
// learner-state stores. Every store keeps its full collection under one
// document; the player additionally keeps one document per
// (course, lesson) saved position.
package storage

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrCorrupt is returned when a persisted record cannot be decoded.
	// Callers treat it as a recoverable condition and start from an
	// empty state.
	ErrCorrupt = errors.New("corrupt record")
)

// KV is a synchronous key-value store. Implementations must round-trip any
// JSON-serializable value losslessly.
type KV interface {
	Save(collection, id string, v any) error
	Load(collection, id string, v any) error
	Delete(collection, id string) error
	List(collection string) ([]string, error)
	Exists(collection, id string) bool
}
