// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request IDs, request-scoped logging, tracing, metrics, CORS, secure
// headers and panic recovery, plus the global error handler that turns
// every failure into an error envelope.
package middleware
