// Package client contains the backends the CLI talks to.
//
// # Overview
//
// Client is the transport-agnostic contract the REPL uses: the auth and task
// contracts plus description suggestions. Two implementations exist:
//
//  1. LocalClient runs the services in-process over a kv.Storage (a SQLite
//     file by default), so the CLI works without a server.
//  2. GRPCClient talks to a taskboard server. It remembers the session token
//     returned by Register/Login/GetSession, injects it into outgoing calls
//     through an interceptor and maps gRPC status codes back to the sentinel
//     errors in internal/common.
//
// # Error Handling
//
// Both implementations return errors matching the same sentinels, so callers
// can use errors.Is without knowing which one they hold.
package client
