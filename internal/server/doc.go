// Package server wires and runs the vault service's HTTP transport.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
