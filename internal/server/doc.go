// Package server wires and runs the transport servers of the sync server.
//
// It owns the lifecycles of the HTTP server (REST and websocket hubs), the
// gRPC health server and the background workers: startup, signal handling
// and graceful shutdown of everything that was started.
package server
