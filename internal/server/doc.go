// Package server runs the HTTP transport of the posts server.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown bounded by the configured shutdown timeout.
package server
