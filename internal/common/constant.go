// Package common contains shared constants and sentinel errors used across
// Taskboard components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the session
// token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Storage keys of the three durable collections.
const (
	UsersKey   = "users"
	SessionKey = "session"
	TasksKey   = "tasks"
)
