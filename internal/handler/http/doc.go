// Package http implements the HTTP transport layer of the sync server.
//
// It wires the chi router: health, metrics and version endpoints, the two
// websocket sync channels and the REST management of devices and sync data.
// Tracing, access logging, authentication and response compression are
// handled here before requests reach the service layer.
package http
