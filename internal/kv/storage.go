package kv

import (
	"context"
	"fmt"
)

// Storage is a durable key-value collection.
type Storage interface {
	// Get returns the value stored under key, or (nil, nil) if there is none.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) error
	Close() error
}

// UpdateFunc receives the current value (nil when absent) and returns the
// value to store. Returning an error aborts the update and leaves the key
// untouched.
type UpdateFunc func(current []byte) ([]byte, error)

// Updater is implemented by backends that can run an UpdateFunc atomically.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Update runs fn against key on s, atomically when s implements Updater.
func Update(ctx context.Context, s Storage, key string, fn UpdateFunc) error {
	if u, ok := s.(Updater); ok {
		return u.Update(ctx, key, fn)
	}

	current, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	if err := s.Set(ctx, key, next); err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	return nil
}
