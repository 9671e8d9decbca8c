// Package config loads settings for the gophsocial CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file passed with --config. Files ending in .yaml or
//     .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, applied by the cli package, which override both.
//
// # File schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	server_url: http://localhost:3000
//	grpc_addr: localhost:50051
//	timeout: 10s
package config
