// Package kv is the durable key-value layer underneath the credential,
// session and task stores.
//
// # Overview
//
// Storage is a get/set/remove contract on string keys holding opaque byte
// values. Get returns (nil, nil) for an absent key and Remove of an absent
// key is not an error. Three implementations are provided:
//
//   - MemoryStorage: process-local map, used by tests and the "memory" backend
//   - SQLStorage: a single kv table in SQLite (modernc) or PostgreSQL (pgx),
//     created by embedded goose migrations
//   - S3Storage: one object per key in an S3-compatible bucket
//
// # Read-modify-write
//
// Update applies a function to the current value of a key. Backends that
// implement Updater do so atomically (a mutex for memory, a transaction for
// SQL); for the others Update degrades to Get followed by Set and the last
// writer wins.
package kv
