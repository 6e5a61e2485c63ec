package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaseSweeper_RemovesExpiredLeases(t *testing.T) {
	clock := clockwork.NewFakeClock()
	leases := service.NewFetchLeases(clock, time.Minute)
	leases.Acquire("acc-1", "conn-1", 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- NewLeaseSweeper(leases, 30*time.Second, clock, logger.Nop()).Run(ctx)
	}()

	clock.BlockUntil(1)
	clock.Advance(30 * time.Second)
	// not expired yet
	require.Never(t, func() bool { return leases.Active("acc-1") == 0 }, 50*time.Millisecond, 5*time.Millisecond)

	leases.Acquire("acc-1", "conn-2", 20)
	clock.Advance(45 * time.Second)
	require.Eventually(t, func() bool { return leases.Active("acc-1") == 1 }, time.Second, time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
