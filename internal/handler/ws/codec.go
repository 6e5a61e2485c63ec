package ws

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/coder/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Subprotocols offered during the handshake, preferred first.
const (
	SubprotocolMsgpack = "msgpack"
	SubprotocolJSON    = "json"
)

// codec is the wire encoding of one connection.
type codec interface {
	frame() websocket.MessageType
	encode(m Message) ([]byte, error)
	decode(data []byte) (inbound, error)
	bind(raw []byte, dst any) error
}

// codecFor returns the codec of a negotiated subprotocol. Clients that
// negotiate nothing speak JSON.
func codecFor(subprotocol string) codec {
	if subprotocol == SubprotocolMsgpack {
		return msgpackCodec{}
	}

	return jsonCodec{}
}

type jsonCodec struct{}

type jsonEnvelope struct {
	Type      MessageType       `json:"type"`
	ID        string            `json:"id"`
	Target    string            `json:"target"`
	Arguments []json.RawMessage `json:"arguments"`
	Result    json.RawMessage   `json:"result"`
	Error     string            `json:"error"`
}

func (jsonCodec) frame() websocket.MessageType {
	return websocket.MessageText
}

func (jsonCodec) encode(m Message) ([]byte, error) {
	return json.Marshal(m)
}

func (jsonCodec) decode(data []byte) (inbound, error) {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return inbound{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	in := inbound{
		Type:      env.Type,
		ID:        env.ID,
		Target:    env.Target,
		Arguments: make([][]byte, 0, len(env.Arguments)),
		Result:    env.Result,
		Error:     env.Error,
	}
	for _, arg := range env.Arguments {
		in.Arguments = append(in.Arguments, arg)
	}

	return in, nil
}

func (jsonCodec) bind(raw []byte, dst any) error {
	return json.Unmarshal(raw, dst)
}

// msgpackCodec reuses the json struct tags of the models so that both
// encodings share field names.
type msgpackCodec struct{}

type msgpackEnvelope struct {
	Type      MessageType          `json:"type"`
	ID        string               `json:"id"`
	Target    string               `json:"target"`
	Arguments []msgpack.RawMessage `json:"arguments"`
	Result    msgpack.RawMessage   `json:"result"`
	Error     string               `json:"error"`
}

func (msgpackCodec) frame() websocket.MessageType {
	return websocket.MessageBinary
}

func (msgpackCodec) encode(m Message) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c msgpackCodec) decode(data []byte) (inbound, error) {
	var env msgpackEnvelope
	if err := c.bind(data, &env); err != nil {
		return inbound{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	in := inbound{
		Type:      env.Type,
		ID:        env.ID,
		Target:    env.Target,
		Arguments: make([][]byte, 0, len(env.Arguments)),
		Result:    env.Result,
		Error:     env.Error,
	}
	for _, arg := range env.Arguments {
		in.Arguments = append(in.Arguments, arg)
	}

	return in, nil
}

func (msgpackCodec) bind(raw []byte, dst any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	dec.SetCustomStructTag("json")

	return dec.Decode(dst)
}
