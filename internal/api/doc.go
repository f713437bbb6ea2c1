// Package api describes the taskboard.v1.TaskBoard gRPC service.
//
// The service is declared by hand instead of being generated: every method
// is unary and exchanges a google.protobuf.Struct holding the same JSON
// documents the HTTP API uses. Encode and Decode convert between those
// structs and the Go message types in this package.
//
// The package also owns the mapping between the sentinel errors in
// internal/common and gRPC status codes, used in both directions.
package api
