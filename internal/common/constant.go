package common

// RequestIDHeaderName carries the per-request correlation id. The server
// echoes it back and generates one when the client did not send it.
const RequestIDHeaderName = "X-Request-ID"

// ResourceStoreServiceName is the service name reported by the gRPC health
// endpoint for the in-memory store.
const ResourceStoreServiceName = "gophsocial.ResourceStore"
