// Package store provides the persistence layer: named collections of
// JSON-encoded records, each stored under its own key. Collections are
// independent; there is no cross-key transactionality, and concurrent
// processes sharing the same file follow last-write-wins.
package store

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("store: key not found")

// Store persists named collections as JSON blobs. Consumers depend on
// this interface so tests can inject the in-memory implementation.
type Store interface {
	// Load unmarshals the value stored under key into v. It returns
	// ErrNotFound when the key is absent and a wrapped error when the
	// stored blob cannot be decoded.
	Load(key string, v any) error

	// Save marshals v and stores it under key, replacing any previous
	// value. Writes are synchronous.
	Save(key string, v any) error

	// Delete removes the value stored under key. Deleting an absent
	// key is not an error.
	Delete(key string) error

	// Keys lists every stored collection key.
	Keys() ([]string, error)
}

// LoadOr loads the collection under key into a value of type T. A
// missing key silently yields def; a corrupt blob logs a warning and
// yields def. It never fails: storage read errors degrade to defaults.
func LoadOr[T any](s Store, logger *zap.Logger, key string, def T) T {
	var v T
	err := s.Load(key, &v)
	if err == nil {
		return v
	}
	if !errors.Is(err, ErrNotFound) {
		logger.Warn("discarding unreadable collection, falling back to defaults",
			zap.String("key", key),
			zap.Error(err))
	}
	return def
}
