// Package config loads runtime configuration for the todokeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c / -config or the CONFIG variable.
//  3. Command-line flags.
//  4. Environment variables.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-f string   file holding the session token
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "token_file": "/home/me/.todokeeper/token",
//	  "request_timeout": "10s"
//	}
//
// Environment: TODOKEEPER_ADDR, TODOKEEPER_TOKEN_FILE.
package config
