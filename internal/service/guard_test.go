package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleFlight_TryAcquire(t *testing.T) {
	g := NewSingleFlight()

	require.True(t, g.TryAcquire("a", "c1", opPush))
	assert.False(t, g.TryAcquire("a", "c1", opPush), "same operation is rejected")

	assert.True(t, g.TryAcquire("a", "c1", opFetch), "other operation of the connection")
	assert.True(t, g.TryAcquire("a", "c2", opPush), "other connection")
	assert.True(t, g.TryAcquire("b", "c1", opPush), "other account")

	g.Release("a", "c1", opPush)
	assert.True(t, g.TryAcquire("a", "c1", opPush), "released operation can run again")
}

func TestSingleFlight_ReleaseScope(t *testing.T) {
	g := NewSingleFlight()

	require.True(t, g.TryAcquire("a", "c1", opPush))
	require.True(t, g.TryAcquire("a", "c1", opFetch))
	require.True(t, g.TryAcquire("a", "c2", opPush))

	g.ReleaseScope("a", "c1")

	assert.False(t, g.Held("a", "c1", opPush))
	assert.False(t, g.Held("a", "c1", opFetch))
	assert.True(t, g.Held("a", "c2", opPush), "other connections keep their operations")
}

func TestSingleFlight_ConcurrentAcquire_OneWinner(t *testing.T) {
	g := NewSingleFlight()

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire("a", "c1", opFetch) {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestSingleFlight_ManyKeys(t *testing.T) {
	g := NewSingleFlight()

	for i := range 200 {
		require.True(t, g.TryAcquire("a", fmt.Sprintf("c%d", i), opPush))
	}
	for i := range 200 {
		assert.True(t, g.Held("a", fmt.Sprintf("c%d", i), opPush))
	}
}
