// Package hub fans live notifications out to the open sessions of an
// account.
//
// Delivery is best effort. Publish never blocks: a notification is dropped
// for a subscriber whose buffer is full, and dropped outright when the
// account has no other session. Clients converge through the backlog fetch
// either way.
package hub

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/models"
)

// Hub is one fan-out group per account. The server runs one hub per
// protocol generation so v1 and v2 sessions never see each other's
// notifications.
type Hub struct {
	name   string
	buffer int

	mu     sync.RWMutex
	groups map[string]map[string]*Subscription

	logger *logger.Logger
}

// New returns an empty hub. name labels its metrics, buffer is the queue
// length of every subscription.
func New(name string, buffer int, logger *logger.Logger) *Hub {
	logger.Debug().Str("hub", name).Msg("creating notification hub")

	return &Hub{
		name:   name,
		buffer: max(buffer, 1),
		groups: make(map[string]map[string]*Subscription),
		logger: logger,
	}
}

// Subscribe joins the account group as connectionID. A previous
// subscription of the same connection is closed.
func (h *Hub) Subscribe(accountID, connectionID string) *Subscription {
	sub := &Subscription{
		hub:          h,
		accountID:    accountID,
		connectionID: connectionID,
		ch:           make(chan models.Notification, h.buffer),
	}

	h.mu.Lock()
	group, ok := h.groups[accountID]
	if !ok {
		group = make(map[string]*Subscription)
		h.groups[accountID] = group
	}
	prev, replaced := group[connectionID]
	if replaced {
		close(prev.ch)
	}
	group[connectionID] = sub
	h.mu.Unlock()

	if !replaced {
		activeSubscriptions.WithLabelValues(h.name).Inc()
	}
	return sub
}

// Publish delivers n to every session of accountID except exceptConnection
// and returns how many subscribers received it.
func (h *Hub) Publish(ctx context.Context, accountID, exceptConnection string, n models.Notification) int {
	log := logger.FromContext(ctx)

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered, others := 0, 0
	for connectionID, sub := range h.groups[accountID] {
		if connectionID == exceptConnection {
			continue
		}
		others++

		select {
		case sub.ch <- n:
			delivered++
		default:
			droppedNotifications.WithLabelValues(h.name, n.Method, reasonBufferFull).Inc()
			log.Warn().
				Str("func", "Hub.Publish").
				Str("hub", h.name).
				Str("method", n.Method).
				Str("connection_id", connectionID).
				Msg("subscriber buffer full, notification dropped")
		}
	}

	if others == 0 {
		droppedNotifications.WithLabelValues(h.name, n.Method, reasonNoSubscribers).Inc()
	}

	return delivered
}

// Subscribers returns the number of open sessions of accountID.
func (h *Hub) Subscribers(accountID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.groups[accountID])
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group := h.groups[sub.accountID]
	if group[sub.connectionID] != sub {
		return
	}

	delete(group, sub.connectionID)
	if len(group) == 0 {
		delete(h.groups, sub.accountID)
	}
	close(sub.ch)
	activeSubscriptions.WithLabelValues(h.name).Dec()
}

// Subscription is the receiving end of one session.
type Subscription struct {
	hub          *Hub
	accountID    string
	connectionID string
	ch           chan models.Notification
	once         sync.Once
}

// C is closed when the subscription is closed or replaced.
func (s *Subscription) C() <-chan models.Notification {
	return s.ch
}

// Close leaves the group. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.unsubscribe(s) })
}
