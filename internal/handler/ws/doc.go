// Package ws implements the duplex sync channel over websockets.
//
// Both sides exchange envelopes of the form
//
//	{type, id?, target?, arguments?, result?, error?, item?}
//
// as JSON text frames, or as MessagePack binary frames when the client
// negotiates the "msgpack" subprotocol. A client invocation carries an id
// and is answered with a result, or with stream items followed by a
// completion. Server invocations that expect an acknowledgment carry an id
// as well; notifications carry none.
package ws
