package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/jonboulle/clockwork"
)

// leaseSweeper drops generation 1 fetch leases whose connection stopped
// renewing them, so an abandoned fetch no longer holds back the account
// cursor.
type leaseSweeper struct {
	leases   *service.FetchLeases
	interval time.Duration
	clock    clockwork.Clock
	logger   *logger.Logger
}

func NewLeaseSweeper(leases *service.FetchLeases, interval time.Duration, clock clockwork.Clock, logger *logger.Logger) Worker {
	return &leaseSweeper{
		leases:   leases,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

func (w *leaseSweeper) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			removed := w.leases.Sweep()
			sweptLeases.Add(float64(removed))
			if removed > 0 {
				w.logger.Info().Int("removed", removed).Msg("expired fetch leases removed")
			}
		}
	}
}
