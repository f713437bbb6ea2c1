// Package stores keeps the three durable collections of the application
// (registered users, the active session and tasks) as JSON documents in a
// kv.Storage.
package stores
