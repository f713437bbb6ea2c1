// Package models defines the records persisted by the stores and exchanged
// by the transports: users and their credentials, the active session and
// tasks.
package models
