package workers

import (
	"context"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers creates the fetch lease sweeper and the storage health probe.
func NewWorkers(
	services *service.Services,
	storages *store.Storages,
	health HealthSetter,
	cfg config.Workers,
	clock clockwork.Clock,
	logger *logger.Logger,
) *Workers {
	logger.Info().Msg("creating workers...")

	return &Workers{
		workers: []Worker{
			NewLeaseSweeper(services.FetchLeases, cfg.LeaseSweepInterval, clock, logger),
			NewStorageHealth(storages.Pingers, health, cfg.HealthCheckInterval, clock, logger),
		},
		logger: logger,
	}
}

// Run runs every worker until ctx ends or one of them fails, and returns the
// first error.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil {
		w.logger.Err(err).Str("func", "Workers.Run").Msg("worker failed")
	}
	w.logger.Info().Msg("workers stopped")

	return err
}
