package ws

import "errors"

var (
	// ErrConnectionClosed is returned by calls on a connection that has
	// been closed by either side.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrUnknownTarget is returned for an invocation of a method the hub
	// does not serve.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrMissingArgument is returned when an invocation carries fewer
	// arguments than its method needs.
	ErrMissingArgument = errors.New("missing argument")

	// ErrMalformedMessage is returned for frames or arguments that cannot be
	// decoded.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrEncodingMessage is returned when an outbound envelope cannot be
	// encoded.
	ErrEncodingMessage = errors.New("error encoding message")

	// ErrClientError is returned by Invoke when the client answers with an
	// error instead of a result.
	ErrClientError = errors.New("client returned an error")
)
