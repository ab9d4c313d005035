package server

// Server defines the lifecycle contract of the vault service transport.
//
// [RunServer] blocks until a termination signal arrives and [Shutdown]
// stops accepting requests and drains in-flight ones.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
