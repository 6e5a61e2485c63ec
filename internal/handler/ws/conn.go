package ws

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-notes-sync/internal/hub"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/coder/websocket"
)

// Conn is one open sync session.
//
// The read loop runs on the goroutine that serves the upgrade request. Every
// client invocation runs on its own goroutine, so results of server calls
// are read while a fetch waits for them. Writes are serialized.
type Conn struct {
	ws      *websocket.Conn
	codec   codec
	session models.Session
	hub     string

	// ctx ends when the connection closes.
	ctx    context.Context
	cancel context.CancelFunc

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan inbound
	streams map[string]context.CancelFunc

	nextID atomic.Uint64
	calls  sync.WaitGroup

	logger *logger.Logger
}

func newConn(ctx context.Context, ws *websocket.Conn, c codec, session models.Session, hubName string, log *logger.Logger) *Conn {
	ctx, cancel := context.WithCancel(log.WithContext(ctx))

	return &Conn{
		ws:      ws,
		codec:   c,
		session: session,
		hub:     hubName,
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[string]chan inbound),
		streams: make(map[string]context.CancelFunc),
		logger:  log,
	}
}

// Session returns the account and connection id of c.
func (c *Conn) Session() models.Session {
	return c.session
}

// Invoke implements [service.ClientCaller]. It sends an invocation and waits
// for the boolean result of the client.
func (c *Conn) Invoke(ctx context.Context, method string, args ...any) (bool, error) {
	id := "s" + strconv.FormatUint(c.nextID.Add(1), 10)
	reply := make(chan inbound, 1)

	c.mu.Lock()
	c.pending[id] = reply
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	if err := c.write(Message{Type: TypeInvocation, ID: id, Target: method, Arguments: args}); err != nil {
		return false, err
	}

	select {
	case in := <-reply:
		if in.Error != "" {
			return false, fmt.Errorf("%w: %s", ErrClientError, in.Error)
		}
		if len(in.Result) == 0 {
			return false, nil
		}

		var ok bool
		if err := c.codec.bind(in.Result, &ok); err != nil {
			return false, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
		}
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	case <-c.ctx.Done():
		return false, ErrConnectionClosed
	}
}

// Close ends the session. In-flight calls observe ErrConnectionClosed.
func (c *Conn) Close() {
	c.cancel()
}

func (c *Conn) write(m Message) error {
	data, err := c.codec.encode(m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingMessage, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err = c.ws.Write(c.ctx, c.codec.frame(), data); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	}

	return nil
}

// send writes m and only logs a failure; the read loop notices a broken
// connection on its own.
func (c *Conn) send(m Message) {
	if err := c.write(m); err != nil {
		c.logger.Debug().Err(err).
			Str("func", "Conn.send").
			Str("type", string(m.Type)).
			Str("id", m.ID).
			Msg("message not sent")
	}
}

// run serves the connection until the client goes away or ctx ends.
func (c *Conn) run(d dispatcher, sub *hub.Subscription) error {
	c.calls.Go(func() {
		c.forward(sub)
	})

	err := c.readLoop(d)

	c.cancel()
	sub.Close()
	c.calls.Wait()

	d.close(context.WithoutCancel(c.ctx), c)

	return err
}

func (c *Conn) readLoop(d dispatcher) error {
	for {
		_, data, err := c.ws.Read(c.ctx)
		if err != nil {
			return err
		}

		in, err := c.codec.decode(data)
		if err != nil {
			c.logger.Warn().Err(err).Str("func", "Conn.readLoop").Msg("dropping malformed message")
			continue
		}

		switch in.Type {
		case TypePing:
			c.send(Message{Type: TypePing})
		case TypeResult, TypeCompletion:
			c.deliver(in)
		case TypeInvocation:
			c.calls.Go(func() {
				c.handleInvocation(d, in)
			})
		case TypeStreamInvocation:
			ctx, cancel := context.WithCancel(c.ctx)
			c.mu.Lock()
			c.streams[in.ID] = cancel
			c.mu.Unlock()

			c.calls.Go(func() {
				c.handleStream(ctx, d, in)
			})
		case TypeCancelInvocation:
			c.mu.Lock()
			if cancel, ok := c.streams[in.ID]; ok {
				cancel()
			}
			c.mu.Unlock()
		default:
			c.logger.Warn().
				Str("func", "Conn.readLoop").
				Str("type", string(in.Type)).
				Msg("dropping message of unknown type")
		}
	}
}

// deliver hands the result of a server invocation to its waiting caller.
func (c *Conn) deliver(in inbound) {
	c.mu.Lock()
	reply, ok := c.pending[in.ID]
	c.mu.Unlock()

	if !ok {
		c.logger.Debug().Str("id", in.ID).Msg("result for unknown or finished invocation")
		return
	}

	select {
	case reply <- in:
	default:
	}
}

func (c *Conn) handleInvocation(d dispatcher, in inbound) {
	result, err := d.invoke(c.ctx, c, in.Target, arguments{raw: in.Arguments, codec: c.codec})
	invocations.WithLabelValues(c.hub, targetLabel(in.Target, err), metrics.Outcome(err)).Inc()
	if err != nil {
		c.logger.Err(err).
			Str("func", "Conn.handleInvocation").
			Str("target", in.Target).
			Msg("invocation failed")
	}

	// fire and forget
	if in.ID == "" {
		return
	}

	reply := Message{Type: TypeResult, ID: in.ID, Result: result}
	if err != nil {
		reply.Result = nil
		reply.Error = err.Error()
	}
	c.send(reply)
}

func (c *Conn) handleStream(ctx context.Context, d dispatcher, in inbound) {
	defer func() {
		c.mu.Lock()
		if cancel, ok := c.streams[in.ID]; ok {
			cancel()
			delete(c.streams, in.ID)
		}
		c.mu.Unlock()
	}()

	seq, err := d.stream(ctx, c, in.Target, arguments{raw: in.Arguments, codec: c.codec})
	if err == nil {
		for item, itemErr := range seq {
			if itemErr != nil {
				err = itemErr
				break
			}
			if err = c.write(Message{Type: TypeStreamItem, ID: in.ID, Item: item}); err != nil {
				break
			}
		}
	}
	invocations.WithLabelValues(c.hub, targetLabel(in.Target, err), metrics.Outcome(err)).Inc()

	completion := Message{Type: TypeCompletion, ID: in.ID}
	if err != nil {
		c.logger.Err(err).
			Str("func", "Conn.handleStream").
			Str("target", in.Target).
			Msg("stream ended with error")
		completion.Error = err.Error()
	}
	c.send(completion)
}

// forward writes the notifications of sub until it is closed.
func (c *Conn) forward(sub *hub.Subscription) {
	for n := range sub.C() {
		err := c.write(Message{Type: TypeInvocation, Target: n.Method, Arguments: n.Arguments})
		if errors.Is(err, ErrConnectionClosed) {
			return
		}
		if err != nil {
			c.logger.Err(err).Str("func", "Conn.forward").Str("method", n.Method).Msg("notification not sent")
		}
	}
}

func targetLabel(target string, err error) string {
	if errors.Is(err, ErrUnknownTarget) {
		return "unknown"
	}

	return target
}
