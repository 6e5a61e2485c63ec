package service

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type fetchLease struct {
	cursor    int64
	expiresAt time.Time
}

// FetchLeases tracks the generation 1 fetches still running per account and
// the cursor each of them started from.
//
// A lease ends with CompleteFetch, on disconnect, or when it was not renewed
// within the timeout. Expired leases never hold back the account cursor.
type FetchLeases struct {
	clock   clockwork.Clock
	timeout time.Duration

	mu     sync.Mutex
	leases map[string]map[string]fetchLease
}

func NewFetchLeases(clock clockwork.Clock, timeout time.Duration) *FetchLeases {
	return &FetchLeases{
		clock:   clock,
		timeout: timeout,
		leases:  make(map[string]map[string]fetchLease),
	}
}

// Acquire starts or replaces the lease of connectionID.
func (l *FetchLeases) Acquire(accountID, connectionID string, cursor int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	byConnection, ok := l.leases[accountID]
	if !ok {
		byConnection = make(map[string]fetchLease)
		l.leases[accountID] = byConnection
	}
	if _, ok = byConnection[connectionID]; !ok {
		activeFetchLeases.WithLabelValues().Inc()
	}
	byConnection[connectionID] = fetchLease{cursor: cursor, expiresAt: l.clock.Now().Add(l.timeout)}
}

// Renew extends a live lease. It does nothing for an unknown one.
func (l *FetchLeases) Renew(accountID, connectionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lease, ok := l.leases[accountID][connectionID]
	if !ok {
		return
	}
	lease.expiresAt = l.clock.Now().Add(l.timeout)
	l.leases[accountID][connectionID] = lease
}

func (l *FetchLeases) Release(accountID, connectionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.remove(accountID, connectionID)
}

// MinOtherCursor returns the smallest start cursor among the unexpired
// leases of accountID other than connectionID.
func (l *FetchLeases) MinOtherCursor(accountID, connectionID string) (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	var (
		lowest int64
		found  bool
	)
	for id, lease := range l.leases[accountID] {
		if id == connectionID || !now.Before(lease.expiresAt) {
			continue
		}
		if !found || lease.cursor < lowest {
			lowest, found = lease.cursor, true
		}
	}

	return lowest, found
}

// Sweep removes expired leases and returns how many were removed.
func (l *FetchLeases) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	removed := 0
	for accountID, byConnection := range l.leases {
		for connectionID, lease := range byConnection {
			if now.Before(lease.expiresAt) {
				continue
			}
			l.remove(accountID, connectionID)
			removed++
		}
	}

	return removed
}

// Active returns the number of leases of accountID, expired or not.
func (l *FetchLeases) Active(accountID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.leases[accountID])
}

func (l *FetchLeases) remove(accountID, connectionID string) {
	byConnection := l.leases[accountID]
	if _, ok := byConnection[connectionID]; !ok {
		return
	}

	delete(byConnection, connectionID)
	if len(byConnection) == 0 {
		delete(l.leases, accountID)
	}
	activeFetchLeases.WithLabelValues().Dec()
}
