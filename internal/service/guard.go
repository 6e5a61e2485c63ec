package service

import (
	"hash/maphash"
	"sync"
)

const guardShards = 32

// Operations guarded by a [SingleFlight].
const (
	opPush  = "push"
	opFetch = "fetch"
)

type flightKey struct {
	accountID string
	scopeID   string
	op        string
}

type guardShard struct {
	mu   sync.Mutex
	held map[flightKey]struct{}
}

// SingleFlight rejects a second operation for the same account, scope and
// operation while the first one runs. The scope is a connection id for
// generation 1 and a device id for generation 2.
//
// State is process local. Keys of one scope share a shard so
// ReleaseScope touches a single lock.
type SingleFlight struct {
	seed   maphash.Seed
	shards [guardShards]guardShard
}

func NewSingleFlight() *SingleFlight {
	g := &SingleFlight{seed: maphash.MakeSeed()}
	for i := range g.shards {
		g.shards[i].held = make(map[flightKey]struct{})
	}

	return g
}

func (g *SingleFlight) shard(accountID, scopeID string) *guardShard {
	var h maphash.Hash
	h.SetSeed(g.seed)
	h.WriteString(accountID)
	h.WriteByte(0)
	h.WriteString(scopeID)

	return &g.shards[h.Sum64()%guardShards]
}

// TryAcquire marks op as running and reports false if it already was.
func (g *SingleFlight) TryAcquire(accountID, scopeID, op string) bool {
	s := g.shard(accountID, scopeID)
	key := flightKey{accountID: accountID, scopeID: scopeID, op: op}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.held[key]; ok {
		guardRejections.WithLabelValues(op).Inc()
		return false
	}
	s.held[key] = struct{}{}

	return true
}

func (g *SingleFlight) Release(accountID, scopeID, op string) {
	s := g.shard(accountID, scopeID)

	s.mu.Lock()
	delete(s.held, flightKey{accountID: accountID, scopeID: scopeID, op: op})
	s.mu.Unlock()
}

// ReleaseScope drops every operation of the scope, e.g. on disconnect.
func (g *SingleFlight) ReleaseScope(accountID, scopeID string) {
	s := g.shard(accountID, scopeID)

	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.held {
		if key.accountID == accountID && key.scopeID == scopeID {
			delete(s.held, key)
		}
	}
}

// Held reports whether op is running.
func (g *SingleFlight) Held(accountID, scopeID, op string) bool {
	s := g.shard(accountID, scopeID)

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.held[flightKey{accountID: accountID, scopeID: scopeID, op: op}]
	return ok
}
