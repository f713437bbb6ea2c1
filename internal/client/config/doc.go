// Package config loads runtime configuration for the taskboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. GEMINI_API_KEY (or API_KEY) from the environment.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-m string     client mode: local or remote
//	-a string     address:port of the taskboard gRPC endpoint (remote mode)
//	-f string     SQLite file holding local state (local mode)
//	-s string     session token HMAC secret (local mode)
//	-i duration   server reachability check interval (remote mode)
//	-d            disable simulated API latency (local mode)
//	-l string     log level
//
// # File schema
//
// Durations accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "mode": "remote",
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s"
//	}
package config
