// Package client talks to a running gophsocial server.
//
// HTTPClient covers the REST API: users, posts and comments. Non-2xx
// responses come back as *APIError; a 404 also matches common.ErrorNotFound
// with errors.Is. Transport failures are reported as ErrUnavailable.
//
// HealthClient queries the gRPC health endpoint.
package client
