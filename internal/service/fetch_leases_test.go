package service

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLeases_MinOtherCursor(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	l := NewFetchLeases(clock, time.Minute)

	_, ok := l.MinOtherCursor("a", "c1")
	assert.False(t, ok, "no leases")

	l.Acquire("a", "c1", 50)
	l.Acquire("a", "c2", 20)
	l.Acquire("a", "c3", 30)
	l.Acquire("b", "c9", 1)

	lowest, ok := l.MinOtherCursor("a", "c1")
	require.True(t, ok)
	assert.Equal(t, int64(20), lowest)

	lowest, ok = l.MinOtherCursor("a", "c2")
	require.True(t, ok)
	assert.Equal(t, int64(30), lowest, "own lease is ignored")

	l.Release("a", "c2")
	l.Release("a", "c3")
	_, ok = l.MinOtherCursor("a", "c1")
	assert.False(t, ok)
}

func TestFetchLeases_ExpiredLeaseIsIgnored(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	l := NewFetchLeases(clock, time.Minute)

	l.Acquire("a", "crashed", 10)
	clock.Advance(2 * time.Minute)

	_, ok := l.MinOtherCursor("a", "c1")
	assert.False(t, ok)
	assert.Equal(t, 1, l.Active("a"), "expired lease stays until swept")

	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 0, l.Active("a"))
}

func TestFetchLeases_Renew(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	l := NewFetchLeases(clock, time.Minute)

	l.Acquire("a", "slow", 10)
	for range 5 {
		clock.Advance(40 * time.Second)
		l.Renew("a", "slow")
	}

	lowest, ok := l.MinOtherCursor("a", "c1")
	require.True(t, ok)
	assert.Equal(t, int64(10), lowest)
	assert.Zero(t, l.Sweep())

	l.Renew("b", "unknown")
	assert.Zero(t, l.Active("b"))
}
