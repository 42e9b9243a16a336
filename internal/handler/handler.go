// Package handler is the HTTP layer that sits right after the router.
//
// It binds and validates request payloads through the validation
// package, calls the service layer and shapes responses, wrapping API
// results in envelopes where the route calls for it.
package handler
