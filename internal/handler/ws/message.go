package ws

import "fmt"

// MessageType is the type field of an envelope.
type MessageType string

const (
	TypeInvocation       MessageType = "invocation"
	TypeStreamInvocation MessageType = "stream_invocation"
	TypeResult           MessageType = "result"
	TypeStreamItem       MessageType = "stream_item"
	TypeCompletion       MessageType = "completion"
	TypeCancelInvocation MessageType = "cancel_invocation"
	TypePing             MessageType = "ping"
)

// Message is an outbound envelope.
type Message struct {
	Type      MessageType `json:"type"`
	ID        string      `json:"id,omitempty"`
	Target    string      `json:"target,omitempty"`
	Arguments []any       `json:"arguments,omitempty"`
	Result    any         `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
	Item      any         `json:"item,omitempty"`
}

// inbound is a decoded envelope whose arguments and result are still in the
// wire encoding of the connection.
type inbound struct {
	Type      MessageType
	ID        string
	Target    string
	Arguments [][]byte
	Result    []byte
	Error     string
}

// arguments binds the raw arguments of one invocation.
type arguments struct {
	raw   [][]byte
	codec codec
}

func (a arguments) bind(i int, dst any) error {
	if i >= len(a.raw) {
		return fmt.Errorf("%w: %d", ErrMissingArgument, i)
	}
	if err := a.codec.bind(a.raw[i], dst); err != nil {
		return fmt.Errorf("%w: argument %d: %w", ErrMalformedMessage, i, err)
	}

	return nil
}
