// Package cli implements the interactive taskboard shell.
//
// The shell reads one command per line, prompts for any missing input and
// talks to a client.Client, which is either the in-process LocalClient or
// a GRPCClient connected to a taskboard server. In remote mode a background
// watcher pings the server and the prompt shows whether it is reachable.
//
// Tasks can be referred to by ID or by their #number in the last listing.
package cli
