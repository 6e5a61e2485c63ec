// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/store"
	"github.com/jonboulle/clockwork"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// storageHealth pings every storage backend and publishes the result as
// health statuses: one per backend under its name, and the overall status
// under the empty service name, which is SERVING only while every backend
// answers.
type storageHealth struct {
	pingers  map[string]store.Pinger
	health   HealthSetter
	interval time.Duration
	clock    clockwork.Clock
	logger   *logger.Logger
}

func NewStorageHealth(pingers map[string]store.Pinger, health HealthSetter, interval time.Duration, clock clockwork.Clock, logger *logger.Logger) Worker {
	return &storageHealth{
		pingers:  pingers,
		health:   health,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

func (w *storageHealth) Run(ctx context.Context) error {
	w.probe(ctx)

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			w.probe(ctx)
		}
	}
}

// probe pings the backends in name order, each bounded by the probe
// interval.
func (w *storageHealth) probe(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING

	for _, name := range slices.Sorted(maps.Keys(w.pingers)) {
		status := healthpb.HealthCheckResponse_SERVING

		pingCtx, cancel := context.WithTimeout(ctx, w.interval)
		err := w.pingers[name].Ping(pingCtx)
		cancel()

		if err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = status
			storageUp.WithLabelValues(name).Set(0)
			w.logger.Err(err).
				Str("func", "storageHealth.probe").
				Str("backend", name).
				Msg("storage backend is unreachable")
		} else {
			storageUp.WithLabelValues(name).Set(1)
		}

		w.health.SetServingStatus(name, status)
	}

	w.health.SetServingStatus("", overall)
}
