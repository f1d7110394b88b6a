// Package server wires and runs the HTTP server of the development
// assistant.
//
// It provides startup, signal handling, and graceful shutdown of the
// transport.
package server
