package server

import "context"

// Server defines the lifecycle of the API server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received.
	RunServer()

	// Run serves until ctx is done or the listener fails. A graceful
	// shutdown returns nil.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
