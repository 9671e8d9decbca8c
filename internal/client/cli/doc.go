// Package cli provides the gophsocial command-line client.
//
// Commands map one-to-one onto the REST API:
//
//	users add | users list
//	posts add | posts list
//	comments add <post-id>
//
// plus "health", which asks the gRPC health endpoint, and "version".
// Every command honours the persistent --server and --json flags.
package cli
