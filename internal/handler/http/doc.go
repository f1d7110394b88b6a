// Package http implements the HTTP transport layer of the development
// assistant server.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API. Request tracing and access logging are handled in this package before
// requests are delegated to the service layer. Every error response carries
// a `{"error": "..."}` body.
package http
